package detect

// FailedExit classifies a process completion event. A nil code means the
// host never learned the exit status; that is treated as success so an
// event source that cannot report a code never rings spurious alerts.
// Any non-nil nonzero value is uniformly failure - no special-casing of
// particular codes.
func FailedExit(code *int) bool {
	return code != nil && *code != 0
}
