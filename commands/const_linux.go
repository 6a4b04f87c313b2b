package commands

const (
	_etc = "/usr/local/etc/inabooth"

	DEFAULT_CONFIG      = _etc + "/sheets/inabooth-app-sheets.yaml"
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)
