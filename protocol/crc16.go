package protocol

// crcTable holds the reflected CCITT polynomial (0x8408) for every byte value
var crcTable = makeCRCTable()

func makeCRCTable() (table [256]uint16) {
	for i := range table {
		c := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if c&1 != 0 {
				c = c>>1 ^ 0x8408
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}

// CRC16 returns the frame checksum (CRC-16/MCRF4XX: init 0xFFFF, reflected,
// no final xor) over the length and sequence bytes plus the payload.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = crc>>8 ^ crcTable[byte(crc)^b]
	}
	return crc
}
