package storage

// Keys under which client state is persisted in the local store. The names
// match what earlier app builds wrote, so upgrades keep their data.
const (
	keyUserData          = "userData"
	keyUserCredentials   = "userCredentials"
	keyRequestedServices = "requestedServices"
	keyServiceDetails    = "serviceDetails"
	keyCuData            = "cuData"
	keyFcmToken          = "fcmToken"
	keyDeviceID          = "deviceId"
	keySettings          = "settings"
)
