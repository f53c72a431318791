// Command regular loads, combines and renders deterministic finite automata
// described in YAML.
package main

func main() {
	Execute()
}
