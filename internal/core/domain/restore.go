package domain

import "time"

// RestoreFileName is the file under the packages directory recording restored archives.
const RestoreFileName = ".ripple-restore.json"

// RestoreRecord remembers which archive was last exploded into a package directory.
type RestoreRecord struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Checksum  string    `json:"checksum"`
	Directory string    `json:"directory"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// Matches reports whether the record describes id exploded from an archive with checksum sum.
func (r *RestoreRecord) Matches(id PackageIdentity, sum string) bool {
	if r == nil {
		return false
	}
	v, err := ParseVersion(r.Version)
	return err == nil && v.Equal(id.Version) && r.Checksum == sum
}
