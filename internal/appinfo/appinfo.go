package appinfo

import "runtime"

var Version = "dev"

type Info struct {
	Product   string
	Version   string
	Platform  string
	UserAgent string
}

func Default() Info {
	info := Info{
		Product:  "StreamFlix",
		Version:  Version,
		Platform: runtime.GOOS,
	}
	info.UserAgent = "streamflix-tui/" + info.Version + " (" + info.Platform + ")"
	return info
}
