package envvar

const (
	// SpeakstoreEnv is the environment variable used to determine the environment
	SpeakstoreEnv = "SPEAKSTORE_ENV"

	// SpeakstoreConfig is the environment variable pointing at an optional YAML config file
	SpeakstoreConfig = "SPEAKSTORE_CONFIG"

	// SpeakstoreServerHTTPPort is the environment variable used to determine the HTTP port
	SpeakstoreServerHTTPPort = "SPEAKSTORE_SERVER_HTTP_PORT"

	// SpeakstoreLogFile is the environment variable used to enable file logging
	SpeakstoreLogFile = "SPEAKSTORE_LOG_FILE"

	// BucketName is the environment variable naming the destination bucket
	BucketName = "BUCKET_NAME"

	// LambdaFunctionName is set by the Lambda runtime for every function
	LambdaFunctionName = "AWS_LAMBDA_FUNCTION_NAME"
)
