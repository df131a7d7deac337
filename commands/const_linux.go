package commands

const (
	_etc = "/usr/local/etc/uhppoted"
	_var = "/usr/local/var/uhppoted"

	DEFAULT_WORKDIR = _var + "/metadata"
	DEFAULT_CONFIG  = _etc + "/metadata/metadata.yaml"
)
