package simulator

import (
	"errors"
	"fmt"

	"github.com/quorumgen/idgen"
)

// ValidateRun runs both validator checks from SPEC_FULL.md §4.F against
// the current client state: no client claimed the same ID twice and no
// two clients claimed the same ID (noDuplicateIDs), and every client
// reached its claim goal (clientsReachedGoal). Each check stops at the
// first violation it finds; when both checks fail, their two errors are
// joined with errors.Join. Further violations of the same check are not
// reported.
func (s *Simulator) ValidateRun() error {
	var errs []error
	if err := s.noDuplicateIDs(); err != nil {
		errs = append(errs, err)
	}
	if err := s.clientsReachedGoal(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// noDuplicateIDs detects both intra-client duplicates ("expected <addr>
// not to claim id <id> twice") and cross-client duplicates ("both <a>
// and <b> claimed id <id>"). Intra-client duplicates are checked for
// every client directly, independent of the pairwise cross-check below,
// so a single-client run still catches a client double-claiming an ID.
func (s *Simulator) noDuplicateIDs() error {
	for _, addr := range s.clientAddrs {
		c := s.clients[addr]
		seen := make(map[idgen.ID]struct{}, len(c.ClaimedIDs))
		for _, id := range c.ClaimedIDs {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("expected %s not to claim id %d twice", addr, id)
			}
			seen[id] = struct{}{}
		}
	}

	for i, a := range s.clientAddrs {
		claimedByA := make(map[idgen.ID]struct{}, len(s.clients[a].ClaimedIDs))
		for _, id := range s.clients[a].ClaimedIDs {
			claimedByA[id] = struct{}{}
		}
		for _, b := range s.clientAddrs[i+1:] {
			for _, id := range s.clients[b].ClaimedIDs {
				if _, clash := claimedByA[id]; clash {
					return fmt.Errorf("both %s and %s claimed id %d", a, b, id)
				}
			}
		}
	}

	return nil
}

// clientsReachedGoal checks that every client claimed exactly
// NumIDsPerClient identifiers.
func (s *Simulator) clientsReachedGoal() error {
	for _, addr := range s.clientAddrs {
		c := s.clients[addr]
		if len(c.ClaimedIDs) != s.cfg.NumIDsPerClient {
			return fmt.Errorf("expected %s to claim %d ids but got %d", addr, s.cfg.NumIDsPerClient, len(c.ClaimedIDs))
		}
	}
	return nil
}
