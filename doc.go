/*
Package hyppaufixtures generates synthetic finite transition systems
used as benchmark fixtures for conformance and robustness checkers of
reactive systems.

Each generator encodes one testing scenario as a deterministic labeled
automaton serialized to a JSON document: dimensional scaling
("dimensions"), action/output interference ("interference"), and
insensitivity to repeated outputs ("stuttering"). The stuttering
generator is the combinatorial core; see pkg/generator.

The hyppau-fixtures command wraps the generators with a batch manifest
runner, a Graphviz DOT converter, and an HTTP API with Prometheus
metrics and an optional Redis document cache.
*/
package hyppaufixtures

// Version is the released version of the module.
var Version = "0.3.0"
