package commands

const (
	_etc = `C:\ProgramData\mealplan`
	_var = `C:\ProgramData\mealplan\var`

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + `\sheets\.google\credentials.json`
	DEFAULT_CONFIG      = _etc + `\mealplan.yaml`

	OPEN = "explorer"
)
