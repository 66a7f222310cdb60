package edi837

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"claimgate-service/internal/pkg/x12"

	"github.com/google/uuid"
)

// Version tokens of the professional-claim implementation in use.
const (
	interchangeVersion   = "00501"
	implementationConvRef = "005010X222A1"
	transactionSetCode    = "837"
	functionalIDCode      = "HC"
	senderIDQualifier     = "ZZ"
)

// EncodeResult is the outcome of a successful encode: the compact
// transmission form, the newline-delimited review form, and the metadata the
// transport collaborator needs. Both renderings tokenize back to the
// identical segment sequence.
type EncodeResult struct {
	Compact  string `json:"compact"`
	Readable string `json:"readable"`
	FileName string `json:"file_name"`

	InterchangeControlNumber string `json:"interchange_control_number"`
	GroupControlNumber       string `json:"group_control_number"`
	TransactionControlNumber string `json:"transaction_control_number"`
	SegmentCount             int    `json:"segment_count"`

	Warnings []Finding `json:"warnings,omitempty"`
}

// Encode validates the claim input and, when no error-severity finding is
// present, serializes it into one interchange carrying exactly one
// transaction with exactly one claim. On refusal the result is nil and the
// returned findings carry every problem at once; no partial output is ever
// produced. Warning findings are returned on the result of a successful
// encode.
func Encode(input *Claim837PInput, at time.Time) (*EncodeResult, []Finding) {
	findings := Validate(input)
	if HasErrors(findings) {
		return nil, findings
	}

	enc := &encoder{
		d:               x12.DefaultDelimiters,
		interchangeCtrl: randomControlNumber(9),
		groupCtrl:       randomControlNumber(6),
		transactionCtrl: randomControlNumber(4),
		at:              at,
	}
	segments := enc.buildSegments(input)

	var compact, readable strings.Builder
	for i, seg := range segments {
		rendered := x12.BuildSegment(seg.Tag, seg.Elements, enc.d)
		compact.WriteString(rendered)
		if i > 0 {
			readable.WriteByte('\n')
		}
		readable.WriteString(rendered)
	}

	return &EncodeResult{
		Compact:                  compact.String(),
		Readable:                 readable.String(),
		FileName:                 BuildFileName(input.Submitter.ID, at),
		InterchangeControlNumber: enc.interchangeCtrl,
		GroupControlNumber:       enc.groupCtrl,
		TransactionControlNumber: enc.transactionCtrl,
		SegmentCount:             len(segments),
		Warnings:                 findings,
	}, nil
}

// BuildFileName produces the deterministic transport name for one encoded
// output: fixed prefix, submitter, compact date and time, and a random suffix
// so outputs within the same second never collide.
func BuildFileName(submitterID string, at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return r
		}
		return -1
	}, submitterID)
	return fmt.Sprintf("CLM_%s_%s_%s_%s.dat", id, x12.FormatDate(at), at.Format("150405"), suffix)
}

type encoder struct {
	d               x12.Delimiters
	interchangeCtrl string
	groupCtrl       string
	transactionCtrl string
	at              time.Time
}

func (e *encoder) buildSegments(input *Claim837PInput) []x12.Segment {
	segments := []x12.Segment{e.interchangeHeader(input), e.groupHeader(input)}
	tx := e.transactionSegments(input)
	segments = append(segments, tx...)
	segments = append(segments,
		seg(x12.TagGroupTrailer, "1", e.groupCtrl),
		seg(x12.TagInterchangeTrailer, "1", e.interchangeCtrl),
	)
	return segments
}

// interchangeHeader emits the fixed-width envelope opener. Identifier fields
// are space-padded to their mandated widths and the usage indicator selects
// production versus test handling at the gateway.
func (e *encoder) interchangeHeader(input *Claim837PInput) x12.Segment {
	usage := "T"
	if input.Production {
		usage = "P"
	}
	return seg(x12.TagInterchangeHeader,
		"00", x12.PadRight("", 10),
		"00", x12.PadRight("", 10),
		senderIDQualifier, x12.PadRight(x12.Sanitize(input.Submitter.ID), 15),
		senderIDQualifier, x12.PadRight(x12.Sanitize(input.ReceiverID), 15),
		x12.FormatDateShort(e.at), x12.FormatTime(e.at),
		string(x12.RepetitionSeparator), interchangeVersion,
		e.interchangeCtrl, "1", usage, string(e.d.Component),
	)
}

func (e *encoder) groupHeader(input *Claim837PInput) x12.Segment {
	return seg(x12.TagGroupHeader,
		functionalIDCode,
		x12.Sanitize(input.Submitter.ID), x12.Sanitize(input.ReceiverID),
		x12.FormatDate(e.at), x12.FormatTime(e.at),
		e.groupCtrl, "X", implementationConvRef,
	)
}

func (e *encoder) transactionSegments(input *Claim837PInput) []x12.Segment {
	var tx []x12.Segment
	add := func(tag string, elements ...string) {
		tx = append(tx, seg(tag, elements...))
	}
	composite := func(components ...string) string {
		return x12.JoinComposite(components, e.d)
	}

	claim := &input.Claim

	add(x12.TagTransactionHeader, transactionSetCode, e.transactionCtrl, implementationConvRef)
	add(x12.TagBeginningHierarchical, "0019", "00", x12.Sanitize(claim.ClaimID),
		x12.FormatDate(e.at), x12.FormatTime(e.at), "CH")

	// 1000A/1000B submitter and receiver.
	add(x12.TagName, "41", "2", x12.Sanitize(input.Submitter.Name), "", "", "", "", "46", x12.Sanitize(input.Submitter.ID))
	per := []string{"IC", x12.Sanitize(input.Submitter.ContactName), "TE", x12.DigitsOnly(input.Submitter.ContactPhone)}
	if input.Submitter.ContactEmail != "" {
		per = append(per, "EM", x12.Sanitize(input.Submitter.ContactEmail))
	}
	add(x12.TagContact, per...)
	add(x12.TagName, "40", "2", x12.Sanitize(input.ReceiverName), "", "", "", "", "46", x12.Sanitize(input.ReceiverID))

	// 2000A billing provider hierarchy.
	bp := &input.BillingProvider
	add(x12.TagHierarchicalLevel, "1", "", "20", "1")
	add(x12.TagProviderInfo, "BI", "PXC", bp.TaxonomyCode)
	add(x12.TagName, "85", "2", x12.Sanitize(bp.OrganizationName), "", "", "", "", "XX", x12.NormalizeNPI(bp.NPI))
	tx = append(tx, e.addressSegments(&bp.Address)...)
	add(x12.TagReference, "EI", x12.NormalizeTaxID(bp.TaxID))

	// 2000B subscriber hierarchy; subscriber is the patient.
	sub := &input.Subscriber
	add(x12.TagHierarchicalLevel, "2", "1", "22", "0")
	add(x12.TagSubscriberInfo, "P", "18", "", "", "", "", "", "", "CI")
	add(x12.TagName, "IL", "1", x12.Sanitize(sub.LastName), x12.Sanitize(sub.FirstName), "", "", "", "MI", x12.Sanitize(sub.MemberID))
	tx = append(tx, e.addressSegments(&sub.Address)...)
	add(x12.TagDemographics, "D8", x12.CalendarToWireDate(sub.DateOfBirth), genderCode(sub.Gender))
	add(x12.TagName, "PR", "2", x12.Sanitize(sub.PayerName), "", "", "", "", "PI", x12.Sanitize(sub.PayerID))

	// 2300 claim.
	frequency := claim.FrequencyCode
	if frequency == "" {
		frequency = "1"
	}
	add(x12.TagClaim,
		x12.Sanitize(claim.ClaimID), x12.FormatAmount(claim.TotalCharge), "", "",
		composite(claim.PlaceOfService, "B", frequency),
		"Y", "A", "Y", "Y",
	)
	if claim.PriorAuthNumber != "" {
		add(x12.TagReference, "G1", x12.Sanitize(claim.PriorAuthNumber))
	}
	add(x12.TagDateOrPeriod, "434", "D8", x12.CalendarToWireDate(claim.ServiceDate))

	// Diagnosis list: the first code is principal, the rest secondary, decimal
	// points stripped for the wire form.
	hi := make([]string, 0, len(claim.DiagnosisCodes))
	for i, code := range claim.DiagnosisCodes {
		qualifier := "ABF"
		if i == 0 {
			qualifier = "ABK"
		}
		hi = append(hi, composite(qualifier, strings.ReplaceAll(code, ".", "")))
	}
	add(x12.TagHealthCareDiagnosis, hi...)

	// 2310B rendering provider.
	rp := &input.RenderingProvider
	add(x12.TagName, "82", "1", x12.Sanitize(rp.LastName), x12.Sanitize(rp.FirstName), "", "", "", "XX", x12.NormalizeNPI(rp.NPI))
	if rp.TaxonomyCode != "" {
		add(x12.TagProviderInfo, "PE", "PXC", rp.TaxonomyCode)
	}

	// 2400 service lines.
	for i := range input.ServiceLines {
		line := &input.ServiceLines[i]
		add(x12.TagLineCounter, strconv.Itoa(i+1))

		procedure := append([]string{"HC", line.ProcedureCode}, line.Modifiers...)
		pointers := make([]string, len(line.DiagnosisPointers))
		for j, ptr := range line.DiagnosisPointers {
			pointers[j] = strconv.Itoa(ptr)
		}
		add(x12.TagProfessionalService,
			composite(procedure...),
			x12.FormatAmount(line.Charge),
			"UN", line.Units.String(), "", "",
			composite(pointers...),
		)
		add(x12.TagDateOrPeriod, "472", "D8", x12.CalendarToWireDate(line.ServiceDate))
	}

	// Trailer count covers every segment from the transaction header to the
	// trailer itself.
	add(x12.TagTransactionTrailer, strconv.Itoa(len(tx)+1), e.transactionCtrl)
	return tx
}

func (e *encoder) addressSegments(a *Address) []x12.Segment {
	n3 := []string{x12.Sanitize(a.Line1)}
	if a.Line2 != "" {
		n3 = append(n3, x12.Sanitize(a.Line2))
	}
	return []x12.Segment{
		seg(x12.TagAddressLine, n3...),
		seg(x12.TagCityStateZip, x12.Sanitize(a.City), strings.ToUpper(x12.Sanitize(a.State)), x12.Sanitize(a.Zip)),
	}
}

func genderCode(g string) string {
	switch strings.ToUpper(strings.TrimSpace(g)) {
	case "M", "MALE":
		return "M"
	case "F", "FEMALE":
		return "F"
	default:
		return "U"
	}
}

func seg(tag string, elements ...string) x12.Segment {
	return x12.Segment{Tag: tag, Elements: elements}
}

// randomControlNumber draws a fixed-width numeric control number. Control
// numbers only need to be internally consistent within one output, not
// globally unique across calls.
func randomControlNumber(digits int) string {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the platform source is broken; a
		// time-derived fallback keeps the width contract.
		n = big.NewInt(time.Now().UnixNano() % max.Int64())
	}
	return fmt.Sprintf("%0*d", digits, n)
}
