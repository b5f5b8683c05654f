package consts

const (
	ApplicationName    = "Img Share Server"
	ApplicationVersion = "v1.0.0"
)
