package protocol

import "github.com/sigurn/crc16"

// CRC-16/MCRF4XX: reflected 0x1021, initial value 0xFFFF, no final xor
var crcTable = crc16.MakeTable(crc16.CRC16_MCRF4XX)

// CRC16 computes the frame checksum over data
func CRC16(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}
