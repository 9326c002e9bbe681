package headers

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"firestige.xyz/hdrkit/pkg/header"
)

func decodeLayer(t *testing.T, data []byte, first gopacket.LayerType) gopacket.Layer {
	t.Helper()
	pkt := gopacket.NewPacket(data, first, gopacket.Default)
	l := pkt.Layer(first)
	require.NotNil(t, l, "gopacket did not decode %s", first)
	return l
}

func TestEthernetMatchesGopacket(t *testing.T) {
	eth := decodeLayer(t, NewEthernet().AsSlice(), layers.LayerTypeEthernet).(*layers.Ethernet)

	assert.Equal(t, net.HardwareAddr{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}, eth.DstMAC)
	assert.Equal(t, net.HardwareAddr{0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b}, eth.SrcMAC)
	assert.Equal(t, layers.EthernetTypeIPv4, eth.EthernetType)
}

func TestVlanMatchesGopacket(t *testing.T) {
	v := NewVlan()
	v.SetPcp(5)
	v.SetCfi(1)
	v.SetVid(0x123)

	tag := decodeLayer(t, v.AsSlice(), layers.LayerTypeDot1Q).(*layers.Dot1Q)
	assert.Equal(t, uint8(5), tag.Priority)
	assert.True(t, tag.DropEligible)
	assert.Equal(t, uint16(0x123), tag.VLANIdentifier)
	assert.Equal(t, layers.EthernetTypeIPv4, tag.Type)

	tag = decodeLayer(t, NewVlan().AsSlice(), layers.LayerTypeDot1Q).(*layers.Dot1Q)
	assert.Equal(t, uint16(10), tag.VLANIdentifier)
}

func TestIPv4MatchesGopacket(t *testing.T) {
	h := NewIPv4()
	ip := decodeLayer(t, h.AsSlice(), layers.LayerTypeIPv4).(*layers.IPv4)

	assert.Equal(t, uint8(h.Version()), ip.Version)
	assert.Equal(t, uint8(h.Ihl()), ip.IHL)
	assert.Equal(t, uint8(h.Diffserv()), ip.TOS)
	assert.Equal(t, uint16(h.TotalLen()), ip.Length)
	assert.Equal(t, uint16(h.Identification()), ip.Id)
	assert.Equal(t, layers.IPv4DontFragment, ip.Flags)
	assert.Equal(t, uint16(h.FragStartset()), ip.FragOffset)
	assert.Equal(t, uint8(h.Ttl()), ip.TTL)
	assert.Equal(t, layers.IPProtocolTCP, ip.Protocol)
	assert.Equal(t, uint16(h.HeaderChecksum()), ip.Checksum)
	assert.True(t, ip.SrcIP.Equal(net.IPv4(192, 168, 0, 1)))
	assert.True(t, ip.DstIP.Equal(net.IPv4(192, 168, 0, 2)))
}

func TestIPv4MatchesXNet(t *testing.T) {
	h := NewIPv4()
	ip, err := ipv4.ParseHeader(h.AsSlice())
	require.NoError(t, err)

	assert.Equal(t, int(h.Version()), ip.Version)
	assert.Equal(t, int(h.Ihl())*4, ip.Len)
	assert.Equal(t, int(h.Identification()), ip.ID)
	assert.Equal(t, int(h.Ttl()), ip.TTL)
	assert.Equal(t, int(h.Protocol()), ip.Protocol)
	assert.Equal(t, int(h.HeaderChecksum()), ip.Checksum)
	assert.True(t, ip.Src.Equal(net.IPv4(192, 168, 0, 1)))
	assert.True(t, ip.Dst.Equal(net.IPv4(192, 168, 0, 2)))
}

func TestIPv6MatchesGopacket(t *testing.T) {
	h := NewIPv6()
	h.SetTrafficClass(0xb8)
	h.SetFlowLabel(0x12345)

	ip := decodeLayer(t, h.AsSlice(), layers.LayerTypeIPv6).(*layers.IPv6)
	assert.Equal(t, uint8(6), ip.Version)
	assert.Equal(t, uint8(0xb8), ip.TrafficClass)
	assert.Equal(t, uint32(0x12345), ip.FlowLabel)
	assert.Equal(t, uint16(0x2e), ip.Length)
	assert.Equal(t, layers.IPProtocolTCP, ip.NextHeader)
	assert.Equal(t, uint8(64), ip.HopLimit)
	assert.Equal(t, net.IP(h.Src()), ip.SrcIP)
	assert.Equal(t, net.IP(h.Dst()), ip.DstIP)
}

func TestIPv6MatchesXNet(t *testing.T) {
	h := NewIPv6()
	ip, err := ipv6.ParseHeader(h.AsSlice())
	require.NoError(t, err)

	assert.Equal(t, int(h.Version()), ip.Version)
	assert.Equal(t, int(h.TrafficClass()), ip.TrafficClass)
	assert.Equal(t, int(h.FlowLabel()), ip.FlowLabel)
	assert.Equal(t, int(h.PayloadLen()), ip.PayloadLen)
	assert.Equal(t, int(h.NextHdr()), ip.NextHeader)
	assert.Equal(t, int(h.HopLimit()), ip.HopLimit)
	assert.Equal(t, "2001:db8:85a3::8a2e:370:7334", ip.Src.String())
	assert.Equal(t, "2001:db8:85a3::8a2e:370:7335", ip.Dst.String())
}

func TestTransportMatchesGopacket(t *testing.T) {
	tcp := decodeLayer(t, NewTCP().AsSlice(), layers.LayerTypeTCP).(*layers.TCP)
	assert.Equal(t, layers.TCPPort(1234), tcp.SrcPort)
	assert.Equal(t, layers.TCPPort(80), tcp.DstPort)
	assert.Equal(t, uint8(5), tcp.DataOffset)
	assert.True(t, tcp.SYN)
	assert.False(t, tcp.ACK)
	assert.Equal(t, uint16(0x2000), tcp.Window)
	assert.Equal(t, uint16(0x0d2c), tcp.Checksum)

	udp := decodeLayer(t, NewUDP().AsSlice(), layers.LayerTypeUDP).(*layers.UDP)
	assert.Equal(t, layers.UDPPort(1234), udp.SrcPort)
	assert.Equal(t, layers.UDPPort(80), udp.DstPort)

	vx := decodeLayer(t, NewVxlan().AsSlice(), layers.LayerTypeVXLAN).(*layers.VXLAN)
	assert.True(t, vx.ValidIDFlag)
	assert.Equal(t, uint32(2000), vx.VNI)
}

// tcpFrame is Ethernet / IPv4 / TCP built from the bundled defaults.
func tcpFrame() []byte {
	ip := NewIPv4()
	ip.SetTotalLen(IPv4Size + TCPSize)
	ip.SetFragStartset(0)

	var frame []byte
	frame = append(frame, NewEthernet().AsSlice()...)
	frame = append(frame, ip.AsSlice()...)
	frame = append(frame, NewTCP().AsSlice()...)
	return frame
}

// vxlanFrame is Ethernet / IPv4 / UDP / Vxlan / Ethernet / IPv4 / UDP.
func vxlanFrame() []byte {
	inner := NewIPv4()
	inner.SetTotalLen(IPv4Size + UDPSize)
	inner.SetProtocol(uint64(layers.IPProtocolUDP))
	inner.SetFragStartset(0)

	outer := NewIPv4()
	outer.SetTotalLen(IPv4Size + UDPSize + VxlanSize + EthernetSize + IPv4Size + UDPSize)
	outer.SetProtocol(uint64(layers.IPProtocolUDP))
	outer.SetFragStartset(0)

	tunnel := NewUDP()
	tunnel.SetDst(4789)

	var frame []byte
	for _, h := range []header.Header{NewEthernet(), outer, tunnel, NewVxlan(), NewEthernet(), inner, NewUDP()} {
		frame = append(frame, h.AsSlice()...)
	}
	return frame
}

func TestDecode(t *testing.T) {
	frame := tcpFrame()
	stack, err := Decode(frame)
	require.NoError(t, err)
	require.Len(t, stack, 3)

	assert.Equal(t, NewEthernet().AsSlice(), header.As[*Ethernet](stack[0]).AsSlice())
	assert.Equal(t, uint64(IPv4Size+TCPSize), header.As[*IPv4](stack[1]).TotalLen())
	assert.Equal(t, uint64(0x02), header.As[*TCP](stack[2]).Flags())

	// the stack owns its bytes
	frame[0] = 0xff
	assert.Equal(t, uint64(0x000102030405), header.As[*Ethernet](stack[0]).Dst())
}

func TestDecodeTunnel(t *testing.T) {
	stack, err := Decode(vxlanFrame())
	require.NoError(t, err)

	var names []string
	for _, h := range stack {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"Ethernet", "IPv4", "UDP", "Vxlan", "Ethernet", "IPv4", "UDP"}, names)
	assert.Equal(t, uint64(2000), header.As[*Vxlan](stack[3]).Vni())
	assert.Equal(t, uint64(IPv4Size+UDPSize), header.As[*IPv4](stack[5]).TotalLen())
}

func TestDecodeVlanTagged(t *testing.T) {
	eth := NewEthernet()
	eth.SetEtype(uint64(layers.EthernetTypeDot1Q))
	tag := NewVlan()
	tag.SetEtype(uint64(layers.EthernetTypeIPv6))
	ip := NewIPv6()
	ip.SetPayloadLen(UDPSize)
	ip.SetNextHdr(uint64(layers.IPProtocolUDP))

	var frame []byte
	for _, h := range []header.Header{eth, tag, ip, NewUDP()} {
		frame = append(frame, h.AsSlice()...)
	}

	stack, err := Decode(frame)
	require.NoError(t, err)
	require.Len(t, stack, 4)
	assert.Equal(t, uint64(10), header.As[*Vlan](stack[1]).Vid())
	assert.Equal(t, ip.AsSlice(), stack[2].AsSlice())
}

func TestDecodeError(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode frame")
}

func TestFromLayer(t *testing.T) {
	pkt := gopacket.NewPacket(tcpFrame(), layers.LayerTypeEthernet, gopacket.Default)

	h, err := FromLayer(pkt.Layer(layers.LayerTypeIPv4))
	require.NoError(t, err)
	assert.Equal(t, "IPv4", h.Name())

	_, err = FromLayer(gopacket.Payload([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrUnsupportedLayer)

	_, err = FromLayer(&layers.UDP{BaseLayer: layers.BaseLayer{Contents: []byte{0, 1}}})
	assert.ErrorIs(t, err, header.ErrSizeMismatch)
}

func TestFromLayerDropsOptions(t *testing.T) {
	ip := NewIPv4()
	ip.SetIhl(6)
	ip.SetTotalLen(24)
	ip.SetFragStartset(0)
	data := append(append([]byte(nil), ip.AsSlice()...), 0x01, 0x01, 0x01, 0x00)

	l := decodeLayer(t, data, layers.LayerTypeIPv4)
	require.Len(t, l.LayerContents(), 24)

	h, err := FromLayer(l)
	require.NoError(t, err)
	assert.Equal(t, ip.AsSlice(), h.AsSlice())
}
