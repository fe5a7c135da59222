package app

import (
	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/plangen"
	"github.com/yungbote/studyplan-backend/internal/utils"
)

type Config struct {
	Port           string
	FrontendOrigin string
	CookieSecure   bool
	Plangen        plangen.Config
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	frontendOrigin := utils.GetEnv("FRONTEND_ORIGIN", "http://localhost:3000", log)
	cookieSecure := utils.GetEnv("COOKIE_SECURE", "false", log) == "true"

	gen := plangen.DefaultConfig()
	gen.Temperature = utils.GetEnvAsFloat("PLANGEN_TEMPERATURE", gen.Temperature, log)
	gen.TopP = utils.GetEnvAsFloat("PLANGEN_TOP_P", gen.TopP, log)
	gen.MaxOutputTokens = utils.GetEnvAsInt("PLANGEN_MAX_OUTPUT_TOKENS", gen.MaxOutputTokens, log)

	return Config{
		Port:           port,
		FrontendOrigin: frontendOrigin,
		CookieSecure:   cookieSecure,
		Plangen:        gen,
	}
}
