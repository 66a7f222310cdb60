// Package reasoncodes holds the static adjustment-reason knowledge base:
// descriptions for the three independent code spaces carried by a remittance
// (claim adjustment reasons, remark codes, provider-level adjustment reasons)
// and the denial classifier used by the payment summary builder.
//
// All tables are immutable after process start and safe to share across
// concurrent decode calls.
package reasoncodes

import "fmt"

var claimAdjustmentReasons = map[string]string{
	"1":   "Deductible amount",
	"2":   "Coinsurance amount",
	"3":   "Co-payment amount",
	"4":   "The procedure code is inconsistent with the modifier used",
	"11":  "The diagnosis is inconsistent with the procedure",
	"16":  "Claim/service lacks information or has submission/billing error(s)",
	"18":  "Exact duplicate claim/service",
	"22":  "This care may be covered by another payer per coordination of benefits",
	"23":  "The impact of prior payer(s) adjudication including payments and/or adjustments",
	"26":  "Expenses incurred prior to coverage",
	"27":  "Expenses incurred after coverage terminated",
	"29":  "The time limit for filing has expired",
	"31":  "Patient cannot be identified as our insured",
	"35":  "Lifetime benefit maximum has been reached",
	"45":  "Charge exceeds fee schedule/maximum allowable or contracted/legislated fee arrangement",
	"49":  "This is a non-covered service because it is a routine/preventive exam",
	"50":  "These are non-covered services because this is not deemed a medical necessity by the payer",
	"55":  "Procedure/treatment/drug is deemed experimental/investigational by the payer",
	"59":  "Processed based on multiple or concurrent procedure rules",
	"62":  "Payment denied/reduced for absence of, or exceeded, pre-certification/authorization",
	"94":  "Processed in excess of charges",
	"96":  "Non-covered charge(s)",
	"97":  "The benefit for this service is included in the payment/allowance for another service/procedure that has already been adjudicated",
	"109": "Claim/service not covered by this payer/contractor",
	"119": "Benefit maximum for this time period or occurrence has been reached",
	"131": "Claim specific negotiated discount",
	"149": "Lifetime benefit maximum has been reached for this service/benefit category",
	"151": "Payment adjusted because the payer deems the information submitted does not support this many/frequency of services",
	"167": "This (these) diagnosis(es) is (are) not covered",
	"197": "Precertification/authorization/notification/pre-treatment absent",
	"198": "Precertification/notification/authorization/pre-treatment exceeded",
	"204": "This service/equipment/drug is not covered under the patient's current benefit plan",
	"222": "Exceeds the contracted maximum number of hours/days/units by this provider for this period",
	"234": "This procedure is not paid separately",
	"A1":  "Claim/service denied",
	"B7":  "This provider was not certified/eligible to be paid for this procedure/service on this date of service",
	"B15": "This service/procedure requires that a qualifying service/procedure be received and covered",
	"CO":  "Contractual obligations",
	"PR":  "Patient responsibility",
}

var remittanceRemarks = map[string]string{
	"M15":  "Separately billed services/tests have been bundled as they are considered components of the same procedure",
	"M25":  "The information furnished does not substantiate the need for this level of service",
	"M53":  "Missing/incomplete/invalid days or units of service",
	"M80":  "Not covered when performed during the same session/date as a previously processed service for the patient",
	"M86":  "Service denied because payment already made for same/similar procedure within set time frame",
	"N14":  "Payment based on a contractual amount or agreement, fee schedule, or maximum allowable amount",
	"N19":  "Procedure code incidental to primary procedure",
	"N20":  "Service not payable with other service rendered on the same date",
	"N30":  "Patient ineligible for this service",
	"N54":  "Claim information is inconsistent with pre-certified/authorized services",
	"N59":  "Please refer to your provider manual for additional program and provider information",
	"N115": "This decision was based on a Local Coverage Determination (LCD)",
	"N130": "Consult plan benefit documents/guidelines for information about restrictions for this service",
	"N179": "Additional information has been requested from the member",
	"N362": "The number of days or units of service exceeds our acceptable maximum",
	"N386": "This decision was based on a National Coverage Determination (NCD)",
	"N418": "Misrouted claim",
	"N425": "Statutorily excluded service(s)",
	"N522": "Duplicate of a claim processed, or to be processed, as a crossover claim",
}

var providerAdjustmentReasons = map[string]string{
	"50": "Late charge",
	"51": "Interest penalty charge",
	"72": "Authorized return",
	"90": "Early payment allowance",
	"AH": "Origination fee",
	"AM": "Applied to borrower's account",
	"AP": "Acceleration of benefits",
	"B2": "Rebate",
	"B3": "Recovery allowance",
	"BD": "Bad debt adjustment",
	"BN": "Bonus",
	"C5": "Temporary allowance",
	"CS": "Adjustment",
	"CT": "Capitation interest",
	"CV": "Capital passthru",
	"FB": "Forwarding balance",
	"IR": "Internal revenue service withholding",
	"J1": "Nonreimbursable",
	"L3": "Penalty",
	"L6": "Interest owed",
	"LE": "Levy",
	"LS": "Lump sum",
	"OA": "Organ acquisition passthru",
	"PI": "Periodic interim payment",
	"PL": "Payment final",
	"RA": "Retro-activity adjustment",
	"RE": "Return on equity",
	"SL": "Student loan repayment",
	"TL": "Third party liability",
	"WO": "Overpayment recovery",
	"WU": "Unspecified recovery",
}

// ClaimAdjustmentDescription resolves a claim adjustment reason code.
func ClaimAdjustmentDescription(code string) string {
	if desc, ok := claimAdjustmentReasons[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown claim adjustment reason: %s", code)
}

// RemarkDescription resolves a remittance remark code.
func RemarkDescription(code string) string {
	if desc, ok := remittanceRemarks[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown remittance remark: %s", code)
}

// ProviderAdjustmentDescription resolves a provider-level adjustment reason.
func ProviderAdjustmentDescription(code string) string {
	if desc, ok := providerAdjustmentReasons[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown provider adjustment reason: %s", code)
}
