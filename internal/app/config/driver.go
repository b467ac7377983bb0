package config

type DriverConfig struct {
	MongoDB DriverMongoDB `mapstructure:"mongodb"`
	Redis   DriverRedis   `mapstructure:"redis"`
	Logger  DriverLogger  `mapstructure:"logger"`
}

type DriverMongoDB struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	DbName   string `mapstructure:"db_name"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type DriverRedis struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DriverLogger struct {
	Level               string `mapstructure:"level"`
	OutputFileName      string `mapstructure:"output_file_name"`
	OutputErrorFileName string `mapstructure:"output_error_file_name"`
}
