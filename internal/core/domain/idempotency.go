package domain

// Ledger key namespaces, one per grant-bearing operation kind.
const (
	purchaseNamespace = "purchase:"
	missionNamespace  = "mission:"
	passNamespace     = "pass:"
)

// PurchaseKey guards a purchase transaction id. Transaction ids are global,
// not scoped to a user.
func PurchaseKey(txID string) string {
	return purchaseNamespace + txID
}

// MissionKey constructs the "{userId}:{missionId}" claim key.
func MissionKey(userID, missionID string) string {
	return missionNamespace + userID + ":" + missionID
}

// PassKey constructs the "{userId}:{passTier}:{rewardId}" claim key.
func PassKey(userID, passTier, rewardID string) string {
	return passNamespace + userID + ":" + passTier + ":" + rewardID
}
