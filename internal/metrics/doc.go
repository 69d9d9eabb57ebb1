// Package metrics summarizes a generation run from its step events.
//
// Every [Metric] observes [generator.Event] values; a [Set] bundles several
// metrics and plugs into an engine as a single observer:
//
//	set := metrics.Defaults(rows, cols)
//	eng.AddObserver(set)
//	eng.Run(ctx, nil)
//	fmt.Println(set.Values()["dead_ends"])
package metrics
