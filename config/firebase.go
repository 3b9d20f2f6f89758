package config

import "os"

// FirebaseServiceAccountKeyPath points at the service-account JSON used
// for the FCM messaging client.
var FirebaseServiceAccountKeyPath = firebaseKeyPath()

func firebaseKeyPath() string {
	if p := os.Getenv("FIREBASE_CREDENTIALS_FILE"); p != "" {
		return p
	}
	return "serviceAccountKey.json"
}
