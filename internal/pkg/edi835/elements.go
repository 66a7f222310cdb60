package edi835

// Element offset tables, one block per segment tag, so a single source of
// truth defines each layout. Offsets are 1-based wire positions; reads
// through x12.Segment.Element degrade to absence instead of panicking.

// BPR financial information.
const (
	bprTransactionHandling = 1
	bprPaymentAmount       = 2
	bprCreditDebitFlag     = 3
	bprPaymentMethod       = 4
	bprPaymentDate         = 16
)

// TRN reassociation trace.
const (
	trnTraceType   = 1
	trnTraceNumber = 2
	trnPayerID     = 3
)

// N1 party identification.
const (
	n1EntityCode  = 1
	n1Name        = 2
	n1IDQualifier = 3
	n1ID          = 4
)

// CLP claim payment.
const (
	clpClaimID            = 1
	clpStatusCode         = 2
	clpChargedAmount      = 3
	clpPaidAmount         = 4
	clpPatientResponsible = 5
	clpPayerControlNumber = 7
	clpFacilityCode       = 8
	clpFrequencyCode      = 9
)

// CAS claim/service adjustment: a group code followed by up to six
// (reason, amount, quantity) triples.
const (
	casGroupCode   = 1
	casFirstTriple = 2
	casTripleSpan  = 3
	casMaxTriples  = 6
)

// SVC service payment.
const (
	svcProcedure     = 1
	svcChargedAmount = 2
	svcPaidAmount    = 3
	svcUnitsPaid     = 5
	svcUnitsBilled   = 7
)

// DTM date/time reference.
const (
	dtmQualifier = 1
	dtmDate      = 2

	dtmQualifierProduction  = "405"
	dtmQualifierServiceDate = "472"
)

// AMT supplemental amount.
const (
	amtQualifier = 1
	amtAmount    = 2

	amtQualifierAllowed = "B6"
)

// LQ remark code.
const (
	lqQualifier = 1
	lqCode      = 2

	lqQualifierRemark = "HE"
)

// PLB provider-level adjustment: provider and fiscal period followed by up to
// six (reason-composite, amount) pairs.
const (
	plbProviderID   = 1
	plbFiscalPeriod = 2
	plbFirstPair    = 3
	plbPairSpan     = 2
	plbMaxPairs     = 6
)

// NM1 individual/organization name (patient loop).
const (
	nm1EntityCode = 1
	nm1LastName   = 3
	nm1FirstName  = 4

	nm1EntityPatient = "QC"
)

// ST transaction header.
const (
	stTransactionType = 1
	stControlNumber   = 2

	remittanceTransactionType = "835"
)

// REF payee identification.
const (
	refQualifier = 1
	refValue     = 2

	refQualifierTaxID = "TJ"
)

// ISA interchange header.
const isaControlNumber = 13

// Party entity codes on N1.
const (
	entityPayer = "PR"
	entityPayee = "PE"
)

// ID qualifiers on N1/NM1.
const (
	qualifierNPI   = "XX"
	qualifierTaxID = "FI"
)
