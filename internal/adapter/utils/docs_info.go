package utils

// registers the generated swagger document with the swag runtime
import _ "manualqa/cmd/api/docs"
