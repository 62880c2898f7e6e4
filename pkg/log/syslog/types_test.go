package syslog

import (
	"testing"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  Priority
	}{
		{name: "trace", level: LevelTrace, want: LOG_DEBUG},
		{name: "debug", level: LevelDebug, want: LOG_DEBUG},
		{name: "information", level: LevelInformation, want: LOG_INFO},
		{name: "warning", level: LevelWarning, want: LOG_WARNING},
		{name: "error", level: LevelError, want: LOG_ERR},
		{name: "critical", level: LevelCritical, want: LOG_CRIT},
		{name: "unknown", level: Level(42), want: LOG_DEBUG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Severity(tt.level); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
	// the numeric codes are fixed by the RFCs
	codes := map[Level]int{LevelTrace: 7, LevelDebug: 7, LevelInformation: 6, LevelWarning: 4, LevelError: 3, LevelCritical: 2}
	for level, code := range codes {
		if got := int(Severity(level)); got != code {
			t.Errorf("Severity(%s) = %d, want %d", level, got, code)
		}
	}
}

func TestMakePriority(t *testing.T) {
	facilities := []Priority{
		LOG_KERN, LOG_USER, LOG_MAIL, LOG_DAEMON, LOG_AUTH, LOG_SYSLOG, LOG_LPR, LOG_NEWS, LOG_UUCP, LOG_CRON,
		LOG_AUTHPRIV, LOG_FTP, LOG_LOCAL0, LOG_LOCAL1, LOG_LOCAL2, LOG_LOCAL3, LOG_LOCAL4, LOG_LOCAL5,
		LOG_LOCAL6, LOG_LOCAL7,
	}
	for _, facility := range facilities {
		for severity := LOG_EMERG; severity <= LOG_DEBUG; severity++ {
			got := MakePriority(facility, severity)
			want := int(facility)/8*8 + int(severity)
			if int(got) != want {
				t.Errorf("MakePriority(%s, %d) = %d, want %d", facility, severity, got, want)
			}
			if got.Facility() != facility {
				t.Errorf("Priority(%d).Facility() = %d, want %d", got, got.Facility(), facility)
			}
			if got.Severity() != severity {
				t.Errorf("Priority(%d).Severity() = %d, want %d", got, got.Severity(), severity)
			}
		}
	}
	if got := MakePriority(LOG_LOCAL0, Severity(LevelInformation)); got != 134 {
		t.Errorf("MakePriority(LOG_LOCAL0, info) = %d, want 134", got)
	}
	if got := MakePriority(LOG_LOCAL7, LOG_DEBUG); got != 191 {
		t.Errorf("MakePriority(LOG_LOCAL7, LOG_DEBUG) = %d, want 191", got)
	}
}

func TestFacilityPriority(t *testing.T) {
	tests := []struct {
		name     string
		facility string
		want     Priority
		wantErr  bool
	}{
		{name: "lower case", facility: "local0", want: LOG_LOCAL0},
		{name: "upper case", facility: "DAEMON", want: LOG_DAEMON},
		{name: "with prefix", facility: "LOG_LOCAL7", want: LOG_LOCAL7},
		{name: "kern", facility: "kern", want: LOG_KERN},
		{name: "invalid", facility: "local8", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FacilityPriority(tt.facility)
			if (err != nil) != tt.wantErr {
				t.Errorf("FacilityPriority() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("FacilityPriority() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriority_Text(t *testing.T) {
	var p Priority
	if err := p.UnmarshalText([]byte("local3")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if p != LOG_LOCAL3 {
		t.Errorf("UnmarshalText() = %v, want %v", p, LOG_LOCAL3)
	}
	b, err := p.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(b) != "local3" {
		t.Errorf("MarshalText() = %s, want local3", b)
	}
	if err := p.Set("nope"); err == nil {
		t.Errorf("Set() expected error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "trace", want: LevelTrace},
		{in: "Debug", want: LevelDebug},
		{in: "info", want: LevelInformation},
		{in: "Information", want: LevelInformation},
		{in: "warn", want: LevelWarning},
		{in: "warning", want: LevelWarning},
		{in: "ERROR", want: LevelError},
		{in: "critical", want: LevelCritical},
		{in: "none", want: LevelNone},
		{in: "fatal", want: LevelNone, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
