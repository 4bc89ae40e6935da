package wizard

import "sync"

// sessionStore keeps at most one in-flight session per user.  Sessions
// are process memory only: a restart or an abandoned flow discards them
// without ceremony.
type sessionStore struct {
	mu     sync.RWMutex
	byUser map[string]Session
}

func (st *sessionStore) get(userID string) (Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.byUser[userID]
	return sess, ok
}

func (st *sessionStore) put(sess Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.byUser == nil {
		st.byUser = make(map[string]Session)
	}
	st.byUser[sess.UserID] = sess
}

func (st *sessionStore) discard(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.byUser, userID)
}
