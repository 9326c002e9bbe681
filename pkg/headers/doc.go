// Package headers holds the bundled protocol headers: Ethernet, Vlan, IPv4,
// IPv6, TCP, UDP and Vxlan. The typed headers are generated from
// headers.yaml and register themselves with the header registry on import.
package headers

//go:generate go run firestige.xyz/hdrkit generate -f headers.yaml -o zz_generated.go -p headers
//go:generate go run firestige.xyz/hdrkit generate -f testdata/tester.yaml -o zz_tester_test.go -p headers
