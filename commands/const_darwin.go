package commands

const (
	_etc = "/usr/local/etc/com.github.uhppoted"
	_var = "/usr/local/var/com.github.uhppoted"

	DEFAULT_WORKDIR = _var + "/metadata"
	DEFAULT_CONFIG  = _etc + "/metadata/metadata.yaml"
)
