//go:build !linux && !darwin && !windows

package steam

func platformBaseCandidates() []string {
	return nil
}
