/*
Package observability turns session lifecycle events into Prometheus metrics.

Metrics are registered on their own registry so several sessions (or tests) never
collide on the global default registry. Wire them with:

	m := observability.NewMetrics()
	sess, _ := trackline.New(sink, trackline.WithLifecycleHooks(m.Hooks()))
	http.Handle("/metrics", m.Handler())
*/
package observability
