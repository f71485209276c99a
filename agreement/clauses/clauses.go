// Package clauses holds the fixed Master Services Agreement text.
//
// Blocks carry {{TOKEN}} markers where submission values are substituted.
// Tokens maps each marker to the content field that fills it.
package clauses

import (
	"regexp"

	"msa-backend/agreement/model"
)

type Kind int

const (
	Paragraph Kind = iota
	Heading
)

type Align int

const (
	// Justify is the default for body paragraphs. Headings fall back to left.
	Justify Align = iota
	Center
)

// Block is one heading or paragraph. A "\n" in Text is a line break
// inside the same paragraph.
type Block struct {
	Kind  Kind
	Level int
	Align Align
	Text  string
}

// Provider identity used on the cover page and in the signature table.
const (
	ProviderName        = "Chervic Advisory Services Private Limited"
	ProviderNameUpper   = "CHERVIC ADVISORY SERVICES PRIVATE LIMITED"
	ProviderSignatory   = "Mr. Vasudevan"
	ProviderDesignation = "Director"
)

// Tokens maps body markers to content fields.
var Tokens = map[string]string{
	"COMPANY_NAME":         model.FieldName,
	"START_DATE":           model.FieldStartDate,
	"HEADQUARTERS":         model.FieldHeadquartersLocation,
	"LICENSE_NUMBER":       model.FieldRegistrationNumber,
	"BILLING_ADDRESS":      model.FieldBillingAddress,
	"BILLING_CONTACT_NAME": model.FieldBillingContactName,
	"BILLING_EMAIL":        model.FieldBillingEmail,
	"CONTACT_DESIGNATION":  model.FieldContactPersonDesignation,
	"CONTACT_NUMBER":       model.FieldContactPersonNumber,
}

var tokenPattern = regexp.MustCompile(`{{([A-Z_]+)}}`)

// Expand replaces every known marker in text with lookup(field).
// Unknown markers are left in place so the renderer can reject them.
func Expand(text string, lookup func(field string) string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		field, ok := Tokens[name]
		if !ok {
			return match
		}
		return lookup(field)
	})
}
