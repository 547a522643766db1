package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	GeocoderAPIKey         string
	GeocoderBaseURL        string
	GeocodeTimeout         string
	KafkaHost              string
	KafkaOrderChangedTopic string
	DispatchBoardWorkers   string
}
