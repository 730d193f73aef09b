package models

// Policy is a room usage rule shown to students and edited by admins.
type Policy struct {
	PolicyID   int    `json:"policy_id"`
	PolicyText string `json:"policy_text"`
}

// PolicyPayload is the create/update body for a policy.
type PolicyPayload struct {
	PolicyText string `json:"policy_text"`
}
