package commands

const (
	_etc = "/usr/local/etc/com.github.uhppoted.mealplan"
	_var = "/usr/local/var/com.github.uhppoted.mealplan"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
	DEFAULT_CONFIG      = _etc + "/mealplan.yaml"

	OPEN = "open"
)
