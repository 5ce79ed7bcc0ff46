package simreader

type Configuration struct {
	Verbosity int `json:"verbosity"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}
