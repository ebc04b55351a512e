package version

import "testing"

func TestSummaryUsesCurrentValues(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = oldVersion, oldCommit, oldDate
	})

	Version = "v0.2.0"
	Commit = "abc1234"
	BuildDate = "2026-10-19T08:00:00Z"

	if got := Summary(); got != "v0.2.0 (commit abc1234, built 2026-10-19T08:00:00Z)" {
		t.Fatalf("unexpected summary: %s", got)
	}
}
