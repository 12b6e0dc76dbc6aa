package cmd

// Store driver names accepted in STORE_DRIVER.
const (
	StoreDriverDynamo = "dynamo"
	StoreDriverMemory = "memory"
)

// Config carries the service configuration read from the environment.
type Config struct {
	HTTPPort       string
	StoreDriver    string
	DynamoTable    string
	AWSRegion      string
	DynamoEndpoint string
}
