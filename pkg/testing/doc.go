// Package testing drives widget trees in tests without a display.
//
// A WidgetTester launches a tree through app.AppLauncher on a headless
// shell and paints each frame into a render.Recorder. Text is measured
// with the monospaced test face, so layout is deterministic across hosts.
// The first frame is painted at launch, so hit-testing works before the
// first Pump.
//
//	func TestCounter(t *testing.T) {
//	    tester := fixeduitest.NewWidgetTester(t, buildCounter, uint32(0))
//	    tester.Tap(fixeduitest.ByText[uint32]("increment"))
//	    tester.Pump()
//	    if !tester.Find(fixeduitest.ByText[uint32]("count=1")).Exists() {
//	        t.Error("label not updated")
//	    }
//	}
//
// CaptureSnapshot records the widget tree and the last frame's operations.
// Snapshot.MatchesFile compares them with a golden YAML file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Run the tests with FIXEDUI_UPDATE_SNAPSHOTS=1 to rewrite golden files.
//
// The package name shadows the standard library's, so import it under an
// alias such as fixeduitest.
package testing
