package models

// UserProfile is a read-only view of a user document. The engine
// only ever reads profiles; the client app writes them.
//
// NotificationPrefs maps a category name (e.g. "messages",
// "trainingCircle") to an explicit opt-in/opt-out. A missing key
// means the user never touched that setting.
type UserProfile struct {
	UserID            string          `firestore:"userId" json:"userId"`
	Username          string          `firestore:"username" json:"username"`
	FCMToken          string          `firestore:"fcmToken" json:"fcmToken,omitempty"`
	NotificationPrefs map[string]bool `firestore:"notificationPrefs" json:"notificationPrefs,omitempty"`
}
