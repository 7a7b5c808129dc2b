package server

import (
	"context"
	"net/http"
)

// tailscaleIdentity resolves the requesting Tailscale node to a user row.
// Tagged nodes (servers, not people) are rejected.
func (s *Server) tailscaleIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		who, err := s.ts.WhoIs(r.Context(), r.RemoteAddr)
		if err != nil {
			s.log.Error("tailscale whois failed", "remote", r.RemoteAddr, "error", err)
			http.Error(w, `{"error":"identity lookup failed"}`, http.StatusInternalServerError)
			return
		}
		if who.Node.IsTagged() {
			http.Error(w, `{"error":"tagged nodes cannot use this service"}`, http.StatusForbidden)
			return
		}

		login := who.UserProfile.LoginName
		displayName := who.UserProfile.DisplayName
		uid, err := s.db.GetOrCreateUser(r.Context(), login, displayName)
		if err != nil {
			s.log.Error("user lookup failed", "login", login, "error", err)
			http.Error(w, `{"error":"user lookup failed"}`, http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, uid)
		ctx = context.WithValue(ctx, userInfoKey, UserInfo{Login: login, DisplayName: displayName})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
