package project

import (
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// javaRequirements maps Minecraft server version ranges to the minimum Java
// release able to run them, newest range first.
var javaRequirements = []struct {
	constraint string
	java       JavaVersion
}{
	{">= 1.20.5-0", Java21},
	{">= 1.18-0", Java17},
	// 1.17 needs Java 16; 17 is the closest offered release.
	{">= 1.17-0", Java17},
}

// RequiredJava returns the minimum Java release for a Minecraft version.
// The second result is false when the version cannot be parsed.
func RequiredJava(mcVersion string) (JavaVersion, bool) {
	v, err := semver.NewVersion(mcVersion)
	if err != nil {
		return "", false
	}
	for _, req := range javaRequirements {
		c, err := semver.NewConstraint(req.constraint)
		if err != nil {
			continue
		}
		if c.Check(v) {
			return req.java, true
		}
	}
	return Java8, true
}

// JavaTooOld reports whether java is below the minimum required for
// mcVersion, together with that minimum. Unparseable versions never warn.
func JavaTooOld(java JavaVersion, mcVersion string) (JavaVersion, bool) {
	required, ok := RequiredJava(mcVersion)
	if !ok {
		return "", false
	}
	have, err := strconv.Atoi(string(java))
	if err != nil {
		return required, false
	}
	need, _ := strconv.Atoi(string(required))
	return required, have < need
}
