// Package throwback resolves the fixed historical offsets ("one year ago",
// "three months ago", ...) against today's date and collects the posts that
// were published on each of those exact calendar days.
//
// The package owns the configuration model of the widget (Settings and the
// declarative admin Schema) and the query engine (ComputeGroups). Storage is
// reached only through the ContentStore and SettingsRepository interfaces, so
// the engine itself holds no state between calls.
//
// Example usage:
//
//	svc := throwback.NewService(settingsRepo, postStore, throwback.WithLocation(loc))
//	settings, groups, err := svc.Load(ctx)
package throwback
