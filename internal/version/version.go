package version

var (
	Version string
	Commit  string
)

func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

func GetFullVersion() string {
	if Commit == "" {
		return GetVersion()
	}
	return GetVersion() + " (" + Commit + ")"
}
