package protocol

// CRC-16 with polynomial 0x8005, zero initial value, and no bit reflection.
// The checksum binds the parts of a multi-part payload set to one original
// message; it detects accidental cross-contamination between scanned sets,
// not tampering.

var crcTable = makeCrcTable()

func makeCrcTable() [256]uint16 {
	var table [256]uint16
	for i := range table {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x8005
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}

func crcUpdate(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc = crc<<8 ^ crcTable[byte(crc>>8)^b]
	}
	return crc
}

// Checksum returns the CRC-16 of data.
func Checksum(data []byte) uint16 {
	return crcUpdate(0, data)
}
