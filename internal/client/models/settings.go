package models

// Settings are the user-configurable flags persisted in the local store.
type Settings struct {
	DevMode            bool `json:"dev_mode"`
	TestAPI            bool `json:"test_api"`
	AllowNotifications bool `json:"allow_notifications"`
	OfflineStorage     bool `json:"offline_storage"`
}
