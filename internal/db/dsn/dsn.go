// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/oncall-relay/oncall-relay/internal/config"
)

// Create builds the Data Source Name from the configuration.
// The form depends on the configured gorm engine.
func Create(dbCfg *config.Config) string {
	if dbCfg.DB.GormEngine == "postgres" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d %s",
			dbCfg.DB.Host,
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Name,
			dbCfg.DB.Port,
			dbCfg.DB.Extras,
		)
	}

	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.Name,
		dbCfg.DB.Extras,
	)

	return out
}
