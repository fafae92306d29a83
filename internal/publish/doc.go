// Package publish pushes changed state files to a git remote.
//
// Publishing is an external, side-effecting step layered on top of the
// already-persisted local state: a publish failure is reported but never
// rolls back or invalidates the data files, and never fails the process.
//
//	publisher := publish.NewPusher("origin", "main")
//	if err := publisher.Publish(ctx, report.ChangedPaths); err != nil {
//	    // log and move on; the harvest itself succeeded
//	}
package publish
