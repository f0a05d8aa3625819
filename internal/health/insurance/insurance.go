package insurance

// Plan is the active insurance plan summary.
type Plan struct {
	Provider       string   `json:"provider"`
	PlanName       string   `json:"plan_name"`
	PolicyNumber   string   `json:"policy_number"`
	GroupNumber    string   `json:"group_number"`
	MemberID       string   `json:"member_id"`
	EffectiveDate  string   `json:"effective_date"`
	CoverageType   string   `json:"coverage_type"`
	PrimaryInsured string   `json:"primary_insured"`
	ContactPhone   string   `json:"contact_phone"`
	ContactWebsite string   `json:"contact_website"`
	Benefits       Benefits `json:"benefits"`
	Network        Network  `json:"network"`
}

// Benefits describes the plan's cost-sharing terms. Values are display
// strings, matching how the insurer publishes them.
type Benefits struct {
	Deductible     string `json:"deductible"`
	OutOfPocketMax string `json:"out_of_pocket_max"`
	PrimaryCare    string `json:"primary_care"`
	Specialists    string `json:"specialists"`
	Emergency      string `json:"emergency"`
	Urgent         string `json:"urgent"`
	Prescription   string `json:"prescription"`
}

// Network lists the in-network providers attached to the plan.
type Network struct {
	PrimaryPhysician   string   `json:"primary_physician"`
	InNetworkHospitals []string `json:"in_network_hospitals"`
}

// Claim is one processed insurance claim.
type Claim struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Provider       string `json:"provider"`
	Service        string `json:"service"`
	Amount         string `json:"amount"`
	Status         string `json:"status"`
	PaidAmount     string `json:"paid_amount"`
	Responsibility string `json:"responsibility"`
}
