package commands

const (
	_etc = "/usr/local/etc/mealplan"
	_var = "/usr/local/var/mealplan"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
	DEFAULT_CONFIG      = _etc + "/mealplan.yaml"

	OPEN = "xdg-open"
)
