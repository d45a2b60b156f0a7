package domain

// DigestAbsent is the sentinel digest recorded when no dependency manifest exists.
// It participates in the stamp comparison like any other digest value, so creating
// a manifest later (or deleting one) changes the digest and forces a reinstall.
const DigestAbsent = "absent"

// StampFilename is the name of the install stamp file inside the environment
// directory. The stamp holds the digest of the manifest at the last successful
// install and nothing else.
const StampFilename = ".manifest.stamp"

// FallbackDependencies is the pinned minimal dependency set installed when no
// manifest file is present. The converter needs exactly these two packages.
var FallbackDependencies = []string{
	"pandas==2.2.2",
	"openpyxl==3.1.2",
}
