package metro_test

import (
	"testing"
	"time"

	"github.com/vsariola/metronome/metro"
)

func collect(a *metro.Alerts) []metro.Alert {
	var ret []metro.Alert
	for _, alert := range a.Iterate {
		ret = append(ret, alert)
	}
	return ret
}

func TestAlertsExpire(t *testing.T) {
	var a metro.Alerts
	a.Add("hello", metro.Info)
	if !a.Update(100 * time.Millisecond) {
		t.Fatal("fresh alert should be animating")
	}
	if got := collect(&a); len(got) != 1 || got[0].FadeLevel <= 0 {
		t.Fatalf("alerts = %+v, want one fading in", got)
	}
	for i := 0; i < 100 && a.Update(100*time.Millisecond); i++ {
	}
	if got := collect(&a); len(got) != 0 {
		t.Fatalf("alerts = %+v, want all expired", got)
	}
}

func TestAlertsNamedReplace(t *testing.T) {
	var a metro.Alerts
	a.AddNamed("x", "first", metro.Warning)
	a.AddNamed("x", "second", metro.Warning)
	a.Add("other", metro.Error)
	got := collect(&a)
	if len(got) != 2 {
		t.Fatalf("got %v alerts, want 2", len(got))
	}
	if got[0].Priority != metro.Error || got[1].Message != "second" {
		t.Fatalf("alerts = %+v, want error first and the replaced warning", got)
	}
}
