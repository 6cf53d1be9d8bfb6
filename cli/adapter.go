package cli

import (
	"path/filepath"

	"SecTriage/app"
)

// ConfigToAppConfig converts a CLI Config to an app.Config
func ConfigToAppConfig(cliConfig *Config) *app.Config {
	appConfig := &app.Config{
		InputPath:        cliConfig.InputPath,
		LogName:          cliConfig.LogName,
		MaxEvents:        cliConfig.MaxEvents,
		AllEvents:        cliConfig.AllEvents,
		EventIDs:         cliConfig.EventIDs,
		Levels:           cliConfig.Levels,
		HideSystemLogons: cliConfig.HideSystemLogons,
		RuleFile:         cliConfig.RuleFile,
		OutputPath:       cliConfig.OutputPath,
		Format:           cliConfig.Format,
		Verbose:          cliConfig.Verbose,
		Silent:           cliConfig.Silent,
	}

	if cliConfig.Demo {
		demoPath := DemoIncidentPath()
		appConfig.InputPath = demoPath
		// Demo runs always leave an export next to the incident file
		if appConfig.OutputPath == "" {
			appConfig.OutputPath = filepath.Join(filepath.Dir(demoPath), "demo.csv")
			appConfig.Format = "csv"
		}
	}

	return appConfig
}
