package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	CarsAPIURL  string `env:"CARS_API_URL" default:"http://localhost:3000/cars"`
	Env         string `env:"APP_ENV" default:"dev"`
}
