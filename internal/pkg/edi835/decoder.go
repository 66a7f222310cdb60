package edi835

import (
	"fmt"
	"strings"

	"claimgate-service/internal/pkg/x12"

	"github.com/shopspring/decimal"
)

// requiredTags are the structural segments every remittance must carry.
// Absence of any one of them aborts the decode before claim extraction.
var requiredTags = []string{
	x12.TagInterchangeHeader,
	x12.TagGroupHeader,
	x12.TagTransactionHeader,
	x12.TagFinancialInfo,
	x12.TagTransactionTrailer,
	x12.TagGroupTrailer,
	x12.TagInterchangeTrailer,
}

// Decode parses raw remittance content into structured payment data. It never
// returns a Go error: structural problems surface through Success=false and
// the error list, and once the structural checks pass extraction is
// best-effort per segment so one malformed claim cannot poison the rest of
// the file.
func Decode(raw []byte) *DecodeResult {
	content := strings.TrimSpace(string(raw))
	if content == "" {
		return failure("remittance content is empty")
	}
	if !strings.HasPrefix(content, x12.TagInterchangeHeader) {
		return failure("content does not begin with an interchange header")
	}

	delims, err := x12.DetectDelimiters([]byte(content))
	if err != nil {
		return failure(fmt.Sprintf("delimiter detection failed: %v", err))
	}
	segments := x12.Tokenize(content, delims)

	present := make(map[string]bool, len(segments))
	for _, seg := range segments {
		present[seg.Tag] = true
	}
	var structural []string
	for _, tag := range requiredTags {
		if !present[tag] {
			structural = append(structural, fmt.Sprintf("missing required segment: %s", tag))
		}
	}
	if len(structural) > 0 {
		return &DecodeResult{Success: false, Errors: structural}
	}

	for _, seg := range segments {
		if seg.Tag == x12.TagTransactionHeader {
			if got := seg.Element(stTransactionType); got != remittanceTransactionType {
				return failure(fmt.Sprintf("unexpected transaction type %q, want %s", got, remittanceTransactionType))
			}
			break
		}
	}

	dec := &decoder{d: delims, segments: segments}
	return &DecodeResult{Success: true, Transaction: dec.transaction()}
}

func failure(messages ...string) *DecodeResult {
	return &DecodeResult{Success: false, Errors: messages}
}

type decoder struct {
	d        x12.Delimiters
	segments []x12.Segment
}

// transaction extracts the whole remittance in two phases: transaction-level
// fields first, then claim and provider-adjustment blocks partitioned by
// their boundary tags. Partition-then-map keeps extraction free of
// order-dependent accumulator state.
func (dec *decoder) transaction() *Transaction {
	tx := &Transaction{}

	headerEnd := len(dec.segments)
	for i, seg := range dec.segments {
		if seg.Tag == x12.TagClaimPayment || seg.Tag == x12.TagProviderAdjustment {
			headerEnd = i
			break
		}
	}
	dec.parseHeader(tx, dec.segments[:headerEnd])

	for _, block := range dec.claimBlocks() {
		tx.Claims = append(tx.Claims, dec.parseClaim(block))
	}
	for _, seg := range dec.segments {
		if seg.Tag == x12.TagProviderAdjustment {
			tx.ProviderAdjustments = append(tx.ProviderAdjustments, dec.parseProviderAdjustment(seg))
		}
	}
	return tx
}

func (dec *decoder) parseHeader(tx *Transaction, header []x12.Segment) {
	// currentParty tracks which N1 loop the address and contact segments
	// belong to while walking the header region.
	currentParty := ""
	for _, seg := range header {
		switch seg.Tag {
		case x12.TagInterchangeHeader:
			tx.InterchangeControlNumber = strings.TrimSpace(seg.Element(isaControlNumber))
		case x12.TagTransactionHeader:
			tx.TransactionControlNumber = seg.Element(stControlNumber)
		case x12.TagFinancialInfo:
			tx.TotalPaid = x12.ParseAmount(seg.Element(bprPaymentAmount))
			tx.CreditDebitFlag = seg.Element(bprCreditDebitFlag)
			tx.PaymentMethodCode = seg.Element(bprPaymentMethod)
			tx.PaymentMethod = ClassifyPaymentMethod(tx.PaymentMethodCode)
			tx.PaymentDate = x12.WireToCalendarDate(seg.Element(bprPaymentDate))
		case x12.TagReassociationTrace:
			tx.TraceNumber = seg.Element(trnTraceNumber)
			if tx.Payer.ID == "" {
				tx.Payer.ID = seg.Element(trnPayerID)
			}
		case x12.TagDateTimeReference:
			if seg.Element(dtmQualifier) == dtmQualifierProduction {
				tx.ProductionDate = x12.WireToCalendarDate(seg.Element(dtmDate))
			}
		case x12.TagPartyIdentification:
			currentParty = seg.Element(n1EntityCode)
			switch currentParty {
			case entityPayer:
				tx.Payer.Name = seg.Element(n1Name)
				if id := seg.Element(n1ID); id != "" {
					tx.Payer.ID = id
				}
			case entityPayee:
				tx.Payee.Name = seg.Element(n1Name)
				switch seg.Element(n1IDQualifier) {
				case qualifierNPI:
					tx.Payee.NPI = seg.Element(n1ID)
				case qualifierTaxID:
					tx.Payee.TaxID = seg.Element(n1ID)
				}
			}
		case x12.TagAddressLine:
			if addr := dec.partyAddress(tx, currentParty); addr != nil {
				addr.Line1 = seg.Element(1)
				addr.Line2 = seg.Element(2)
			}
		case x12.TagCityStateZip:
			if addr := dec.partyAddress(tx, currentParty); addr != nil {
				addr.City = seg.Element(1)
				addr.State = seg.Element(2)
				addr.Zip = seg.Element(3)
			}
		case x12.TagContact:
			if currentParty == entityPayer {
				tx.Payer.ContactName = seg.Element(2)
				if seg.Element(3) == "TE" {
					tx.Payer.ContactPhone = seg.Element(4)
				}
			}
		case x12.TagReference:
			if currentParty == entityPayee && seg.Element(refQualifier) == refQualifierTaxID {
				tx.Payee.TaxID = seg.Element(refValue)
			}
		}
	}
}

func (dec *decoder) partyAddress(tx *Transaction, party string) *Address {
	switch party {
	case entityPayer:
		if tx.Payer.Address == nil {
			tx.Payer.Address = &Address{}
		}
		return tx.Payer.Address
	case entityPayee:
		if tx.Payee.Address == nil {
			tx.Payee.Address = &Address{}
		}
		return tx.Payee.Address
	}
	return nil
}

// claimBlocks partitions the token stream into one sub-range per claim. A
// block opens at a claim-payment tag and runs until the next claim-payment,
// provider-adjustment, or transaction-trailer tag.
func (dec *decoder) claimBlocks() [][]x12.Segment {
	var blocks [][]x12.Segment
	start := -1
	for i, seg := range dec.segments {
		switch seg.Tag {
		case x12.TagClaimPayment:
			if start >= 0 {
				blocks = append(blocks, dec.segments[start:i])
			}
			start = i
		case x12.TagProviderAdjustment, x12.TagTransactionTrailer:
			if start >= 0 {
				blocks = append(blocks, dec.segments[start:i])
				start = -1
			}
		}
	}
	if start >= 0 {
		blocks = append(blocks, dec.segments[start:])
	}
	return blocks
}

func (dec *decoder) parseClaim(block []x12.Segment) RemittanceClaim {
	clp := block[0]
	claim := RemittanceClaim{
		ClaimID:            clp.Element(clpClaimID),
		StatusCode:         clp.Element(clpStatusCode),
		Status:             ClassifyStatus(clp.Element(clpStatusCode)),
		ChargedAmount:      x12.ParseAmount(clp.Element(clpChargedAmount)),
		PaidAmount:         x12.ParseAmount(clp.Element(clpPaidAmount)),
		PatientResponsible: x12.ParseAmount(clp.Element(clpPatientResponsible)),
		PayerControlNumber: clp.Element(clpPayerControlNumber),
		FacilityCode:       clp.Element(clpFacilityCode),
		FrequencyCode:      clp.Element(clpFrequencyCode),
	}

	lineStart := len(block)
	for i, seg := range block {
		if seg.Tag == x12.TagServicePayment {
			lineStart = i
			break
		}
	}

	// Claim-level segments are those before the first service line.
	for _, seg := range block[1:lineStart] {
		switch seg.Tag {
		case x12.TagClaimAdjustment:
			claim.Adjustments = append(claim.Adjustments, dec.parseAdjustment(seg))
		case x12.TagSupplementalAmount:
			if seg.Element(amtQualifier) == amtQualifierAllowed {
				claim.AllowedAmount = amountPtr(seg.Element(amtAmount))
			}
		case x12.TagName:
			if seg.Element(nm1EntityCode) == nm1EntityPatient {
				claim.PatientLastName = seg.Element(nm1LastName)
				claim.PatientFirstName = seg.Element(nm1FirstName)
			}
		}
	}

	for _, lineBlock := range partitionByTag(block[lineStart:], x12.TagServicePayment) {
		claim.Lines = append(claim.Lines, dec.parseLine(lineBlock))
	}
	return claim
}

func (dec *decoder) parseLine(block []x12.Segment) ServiceLinePayment {
	svc := block[0]
	line := ServiceLinePayment{
		ChargedAmount: x12.ParseAmount(svc.Element(svcChargedAmount)),
		PaidAmount:    x12.ParseAmount(svc.Element(svcPaidAmount)),
		UnitsPaid:     x12.ParseAmount(svc.Element(svcUnitsPaid)),
	}

	components := x12.SplitComposite(svc.Element(svcProcedure), dec.d)
	if len(components) > 0 {
		line.ProcedureQualifier = components[0]
	}
	if len(components) > 1 {
		line.ProcedureCode = components[1]
	}
	for _, mod := range components[min(2, len(components)):] {
		if mod != "" {
			line.Modifiers = append(line.Modifiers, mod)
		}
	}

	// Billed units are optional on the wire; absence means nothing was
	// reduced, so they fall back to the paid units.
	if billed := svc.Element(svcUnitsBilled); billed != "" {
		line.UnitsBilled = x12.ParseAmount(billed)
	} else {
		line.UnitsBilled = line.UnitsPaid
	}

	for _, seg := range block[1:] {
		switch seg.Tag {
		case x12.TagDateTimeReference:
			if seg.Element(dtmQualifier) == dtmQualifierServiceDate {
				line.ServiceDate = x12.WireToCalendarDate(seg.Element(dtmDate))
			}
		case x12.TagClaimAdjustment:
			line.Adjustments = append(line.Adjustments, dec.parseAdjustment(seg))
		case x12.TagSupplementalAmount:
			if seg.Element(amtQualifier) == amtQualifierAllowed {
				line.AllowedAmount = amountPtr(seg.Element(amtAmount))
			}
		case x12.TagRemarkCode:
			if seg.Element(lqQualifier) == lqQualifierRemark {
				line.RemarkCodes = append(line.RemarkCodes, seg.Element(lqCode))
			}
		}
	}
	return line
}

// parseAdjustment expands one adjustment segment into its detail triples; all
// triples share the segment's group code.
func (dec *decoder) parseAdjustment(seg x12.Segment) Adjustment {
	adj := Adjustment{
		RawGroup: seg.Element(casGroupCode),
		Group:    ClassifyGroup(seg.Element(casGroupCode)),
	}
	for k := 0; k < casMaxTriples; k++ {
		base := casFirstTriple + casTripleSpan*k
		reason := seg.Element(base)
		if reason == "" {
			break
		}
		detail := AdjustmentDetail{
			ReasonCode: reason,
			Amount:     x12.ParseAmount(seg.Element(base + 1)),
		}
		if qty := seg.Element(base + 2); qty != "" {
			detail.Quantity = amountPtr(qty)
		}
		adj.Details = append(adj.Details, detail)
	}
	return adj
}

func (dec *decoder) parseProviderAdjustment(seg x12.Segment) ProviderAdjustment {
	plb := ProviderAdjustment{
		ProviderID:   seg.Element(plbProviderID),
		FiscalPeriod: x12.WireToCalendarDate(seg.Element(plbFiscalPeriod)),
	}
	for k := 0; k < plbMaxPairs; k++ {
		base := plbFirstPair + plbPairSpan*k
		composite := seg.Element(base)
		if composite == "" {
			break
		}
		parts := x12.SplitComposite(composite, dec.d)
		detail := ProviderAdjustmentDetail{
			ReasonCode: parts[0],
			Amount:     x12.ParseAmount(seg.Element(base + 1)),
		}
		if len(parts) > 1 {
			detail.ReferenceID = parts[1]
		}
		plb.Details = append(plb.Details, detail)
	}
	return plb
}

// partitionByTag slices segments into blocks opening at each occurrence of
// tag. The input must begin with the tag.
func partitionByTag(segments []x12.Segment, tag string) [][]x12.Segment {
	var blocks [][]x12.Segment
	start := -1
	for i, seg := range segments {
		if seg.Tag == tag {
			if start >= 0 {
				blocks = append(blocks, segments[start:i])
			}
			start = i
		}
	}
	if start >= 0 {
		blocks = append(blocks, segments[start:])
	}
	return blocks
}

func amountPtr(s string) *decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d := x12.ParseAmount(s)
	return &d
}
