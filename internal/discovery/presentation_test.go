package discovery

import "testing"

func TestPresentation_Addr(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		port int
		want string
	}{
		{"IPv4", "192.168.4.16", 8765, "192.168.4.16:8765"},
		{"IPv6", "fe80::1", 8765, "[fe80::1]:8765"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Presentation{IP: tt.ip, Port: tt.port}
			if got := p.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresentation_String(t *testing.T) {
	p := &Presentation{IP: "10.0.0.5", Port: 9000, Session: "abc", Deck: "Demo"}
	want := `"Demo" (session abc) at 10.0.0.5:9000`
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPresentation_GetMetadata(t *testing.T) {
	p := &Presentation{Metadata: map[string]string{"session": "abc"}}

	if got := p.GetMetadata("session"); got != "abc" {
		t.Errorf("GetMetadata(session) = %q, want abc", got)
	}
	if got := p.GetMetadata("missing"); got != "" {
		t.Errorf("GetMetadata(missing) = %q, want empty", got)
	}
	if got := (&Presentation{}).GetMetadata("session"); got != "" {
		t.Errorf("GetMetadata on nil metadata = %q, want empty", got)
	}
}
