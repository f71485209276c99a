// Package model defines the data merged into the agreement document.
package model

// Field keys used by the submission form and the document template.
const (
	FieldName                     = "name"
	FieldWebsiteURL               = "websiteUrl"
	FieldRegistrationNumber       = "registrationNumber"
	FieldHeadquartersLocation     = "headquartersLocation"
	FieldCountriesOfOperation     = "countriesOfOperation"
	FieldBusinessType             = "businessType"
	FieldIndustryType             = "industryType"
	FieldBillingAddress           = "billingAddress"
	FieldBillingContactName       = "billing_contact_name"
	FieldBillingEmail             = "billing_email"
	FieldStartDate                = "start_date"
	FieldContactPersonDesignation = "contact_person_designation"
	FieldContactPersonNumber      = "contact_person_number"
	FieldChervicDate              = "chervic_date"
	FieldContactPersonSignDate    = "contact_person_sign_date"

	FieldChervicName       = "chervic_name"
	FieldChervicTitle      = "chervic_title"
	FieldCustomerSignName  = "customer_sign_name"
	FieldCustomerSignTitle = "customer_sign_title"
	FieldAgreementDate     = "agreement_date"
	FieldAribaNetworkID    = "aribaNetworkId"
	FieldOtherLocalTaxID   = "otherLocalTaxId"

	FieldChervicSignature  = "chervic_signature"
	FieldCustomerSignature = "customer_signature"
)

// RequiredFields lists the submission fields in validation order.
var RequiredFields = []string{
	FieldName,
	FieldWebsiteURL,
	FieldRegistrationNumber,
	FieldHeadquartersLocation,
	FieldCountriesOfOperation,
	FieldBusinessType,
	FieldIndustryType,
	FieldBillingAddress,
	FieldBillingContactName,
	FieldBillingEmail,
	FieldStartDate,
	FieldContactPersonDesignation,
	FieldContactPersonNumber,
	FieldChervicDate,
	FieldContactPersonSignDate,
}

// DateFields must hold YYYY-MM-DD values.
var DateFields = []string{FieldStartDate, FieldChervicDate, FieldContactPersonSignDate}

// OptionalFields are copied when present and recorded in edit history.
var OptionalFields = []string{
	FieldChervicName,
	FieldChervicTitle,
	FieldCustomerSignName,
	FieldCustomerSignTitle,
	FieldAgreementDate,
}

// DomainFields are the form fields that can be prefilled from a domain record.
var DomainFields = []string{
	FieldName,
	FieldWebsiteURL,
	FieldRegistrationNumber,
	FieldHeadquartersLocation,
	FieldCountriesOfOperation,
	FieldBusinessType,
	FieldIndustryType,
	FieldBillingAddress,
}

// placeholders render in place of a missing substitution value.
var placeholders = map[string]string{
	FieldName:                     "Company Name",
	FieldStartDate:                "Start Date",
	FieldHeadquartersLocation:     "Location / Headquarters",
	FieldRegistrationNumber:       "Business License Number",
	FieldBillingAddress:           "Billing Address",
	FieldBillingContactName:       "Billing Contact Name",
	FieldBillingEmail:             "Billing Email",
	FieldContactPersonDesignation: "Contact person Designation",
	FieldContactPersonNumber:      "Contact person number",
	FieldContactPersonSignDate:    "Contact person Signature Date",
	FieldChervicDate:              "CAS Signature Date",
}

// ContentMapping carries sanitized field values and signature image paths
// for one submission.
type ContentMapping map[string]string

// Get returns the value for key, falling back to its placeholder label.
func (m ContentMapping) Get(key string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return placeholders[key]
}

// Clone returns an independent copy.
func (m ContentMapping) Clone() ContentMapping {
	out := make(ContentMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Subset returns the entries whose keys are listed, skipping absent ones.
func (m ContentMapping) Subset(keys ...[]string) map[string]string {
	out := make(map[string]string)
	for _, group := range keys {
		for _, k := range group {
			if v, ok := m[k]; ok {
				out[k] = v
			}
		}
	}
	return out
}

// HasChervicSignature reports whether a provider signature path is set.
func (m ContentMapping) HasChervicSignature() bool { return m[FieldChervicSignature] != "" }

// HasCustomerSignature reports whether a counter-party signature path is set.
func (m ContentMapping) HasCustomerSignature() bool { return m[FieldCustomerSignature] != "" }
