// Package sample seeds the demo objects: an Account and a Contact with the
// sectioned field layouts the mock UI ships with, plus a few records.
package sample

import (
	"github.com/salesmock/crmkit/pkg/model"
	"github.com/salesmock/crmkit/pkg/store"
)

// Objects returns a seed store holding the demo objects. Callers derive
// per-session state with store.NewSession.
func Objects() *store.Store {
	seed := store.New()
	seed.Add(account())
	seed.Add(contact())
	return seed
}

func account() *model.Object {
	return &model.Object{
		Name:  "Account",
		Label: "Account",
		Sections: []model.Section{
			{
				ID:       "account_information",
				Title:    "Account Information",
				Expanded: true,
				Visible:  true,
				Fields: []model.Field{
					{ID: "account_name", Label: "Account Name", Type: model.FieldTypeText, Visible: true, Required: true, Order: 1},
					{ID: "account_number", Label: "Account Number", Type: model.FieldTypeText, Visible: true, Order: 2},
					{ID: "type", Label: "Type", Type: model.FieldTypePicklist, Visible: true, Order: 3,
						Options: []string{"Customer", "Partner", "Prospect", "Vendor"}},
					{ID: "industry", Label: "Industry", Type: model.FieldTypePicklist, Visible: true, Order: 4,
						Options: []string{"Logistics", "Manufacturing", "Retail", "Technology"}},
					{ID: "annual_revenue", Label: "Annual Revenue", Type: model.FieldTypeCurrency, Visible: true, Order: 5},
					{ID: "employees", Label: "Employees", Type: model.FieldTypeNumber, Visible: true, Order: 6},
					{ID: "ownership", Label: "Ownership", Type: model.FieldTypePercentage, Visible: true, Order: 7},
					{ID: "active_customer", Label: "Active Customer", Type: model.FieldTypeCheckbox, Visible: true, Order: 8},
				},
			},
			{
				ID:       "contact_details",
				Title:    "Contact Details",
				Expanded: true,
				Visible:  true,
				Fields: []model.Field{
					{ID: "phone", Label: "Phone", Type: model.FieldTypePhone, Visible: true, Order: 1},
					{ID: "website", Label: "Website", Type: model.FieldTypeURL, Visible: true, Order: 2},
					{ID: "billing_city", Label: "Billing City", Type: model.FieldTypeText, Visible: true, Order: 3},
					{ID: "billing_country", Label: "Billing Country", Type: model.FieldTypeText, Visible: true, Order: 4},
				},
			},
			{
				ID:       "additional_information",
				Title:    "Additional Information",
				Expanded: false,
				Visible:  true,
				Fields: []model.Field{
					{ID: "customer_since", Label: "Customer Since", Type: model.FieldTypeDate, Visible: true, Order: 1},
					{ID: "description", Label: "Description", Type: model.FieldTypeTextarea, Visible: true, Order: 2},
					{ID: "global_id", Label: "Global ID", Type: model.FieldTypeText, Visible: false, Order: 3},
				},
			},
		},
		Records: []model.Record{
			{
				"account_name": "Acme Freight Lines", "account_number": "ACC-1001",
				"type": "Customer", "industry": "Logistics",
				"annual_revenue": 12500000.0, "employees": 320.0, "ownership": "100",
				"active_customer": true,
				"phone":           "(555) 201-7744", "website": "https://acmefreight.example",
				"billing_city": "Columbus", "billing_country": "USA",
				"customer_since": "2018-04-12",
				"description":    "Regional carrier, renewal due Q3.",
				"global_id":      "GBL-88121",
			},
			{
				"account_name": "Globex Manufacturing", "account_number": "ACC-1002",
				"type": "Prospect", "industry": "Manufacturing",
				"annual_revenue": 48000000.0, "employees": 1250.0, "ownership": "60",
				"active_customer": false,
				"phone":           "(555) 998-1200", "website": "https://globex.example",
				"billing_city": "Cincinnati", "billing_country": "USA",
				"customer_since": "",
				"description":    "Evaluating TMS migration.",
			},
			{
				"account_name": "Initech Retail Group", "account_number": "ACC-1003",
				"type": "Partner", "industry": "Retail",
				"annual_revenue": 7300000.0, "employees": 95.0, "ownership": "100",
				"active_customer": true,
				"phone":           "(555) 410-3377", "website": "https://initech.example",
				"billing_city": "Austin", "billing_country": "USA",
				"customer_since": "2021-11-02",
			},
		},
	}
}

func contact() *model.Object {
	return &model.Object{
		Name:  "Contact",
		Label: "Contact",
		Sections: []model.Section{
			{
				ID:       "contact_information",
				Title:    "Contact Information",
				Expanded: true,
				Visible:  true,
				Fields: []model.Field{
					{ID: "first_name", Label: "First Name", Type: model.FieldTypeText, Visible: true, Required: true, Order: 1},
					{ID: "last_name", Label: "Last Name", Type: model.FieldTypeText, Visible: true, Required: true, Order: 2},
					{ID: "title", Label: "Title", Type: model.FieldTypeText, Visible: true, Order: 3},
					{ID: "email", Label: "Email", Type: model.FieldTypeEmail, Visible: true, Order: 4},
					{ID: "mobile", Label: "Mobile", Type: model.FieldTypePhone, Visible: true, Order: 5},
					{ID: "lead_source", Label: "Lead Source", Type: model.FieldTypePicklist, Visible: true, Order: 6,
						Options: []string{"Web", "Referral", "Trade Show", "Cold Call"}},
					{ID: "do_not_call", Label: "Do Not Call", Type: model.FieldTypeCheckbox, Visible: true, Order: 7},
				},
			},
			{
				ID:       "background",
				Title:    "Background",
				Expanded: false,
				Visible:  true,
				Fields: []model.Field{
					{ID: "birthdate", Label: "Birthdate", Type: model.FieldTypeDate, Visible: true, Order: 1},
					{ID: "notes", Label: "Notes", Type: model.FieldTypeTextarea, Visible: true, Order: 2},
				},
			},
		},
		Records: []model.Record{
			{
				"first_name": "Dana", "last_name": "Whitfield", "title": "VP Operations",
				"email": "dana.whitfield@acmefreight.example", "mobile": "(555) 201-7745",
				"lead_source": "Referral", "do_not_call": false,
				"birthdate": "1979-06-21", "notes": "Prefers morning calls.",
			},
			{
				"first_name": "Marcus", "last_name": "Okafor", "title": "IT Director",
				"email": "m.okafor@globex.example", "mobile": "(555) 998-1222",
				"lead_source": "Trade Show", "do_not_call": true,
			},
		},
	}
}
