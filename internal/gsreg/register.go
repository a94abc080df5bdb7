package gsreg

// Register is a GS register address as it appears in the address half of
// an A+D packet record.
type Register uint8

const (
	AddrPRIM       Register = 0x00
	AddrRGBAQ      Register = 0x01
	AddrST         Register = 0x02
	AddrUV         Register = 0x03
	AddrXYZF2      Register = 0x04
	AddrXYZ2       Register = 0x05
	AddrTEX0_1     Register = 0x06
	AddrTEX0_2     Register = 0x07
	AddrCLAMP_1    Register = 0x08
	AddrCLAMP_2    Register = 0x09
	AddrFOG        Register = 0x0A
	AddrXYZF3      Register = 0x0C
	AddrXYZ3       Register = 0x0D
	AddrTEX1_1     Register = 0x14
	AddrTEX1_2     Register = 0x15
	AddrTEX2_1     Register = 0x16
	AddrTEX2_2     Register = 0x17
	AddrXYOFFSET_1 Register = 0x18
	AddrXYOFFSET_2 Register = 0x19
	AddrPRMODECONT Register = 0x1A
	AddrPRMODE     Register = 0x1B
	AddrTEXCLUT    Register = 0x1C
	AddrSCANMSK    Register = 0x22
	AddrMIPTBP1_1  Register = 0x34
	AddrMIPTBP1_2  Register = 0x35
	AddrMIPTBP2_1  Register = 0x36
	AddrMIPTBP2_2  Register = 0x37
	AddrTEXA       Register = 0x3B
	AddrFOGCOL     Register = 0x3D
	AddrTEXFLUSH   Register = 0x3F
	AddrSCISSOR_1  Register = 0x40
	AddrSCISSOR_2  Register = 0x41
	AddrALPHA_1    Register = 0x42
	AddrALPHA_2    Register = 0x43
	AddrDIMX       Register = 0x44
	AddrDTHE       Register = 0x45
	AddrCOLCLAMP   Register = 0x46
	AddrTEST_1     Register = 0x47
	AddrTEST_2     Register = 0x48
	AddrPABE       Register = 0x49
	AddrFBA_1      Register = 0x4A
	AddrFBA_2      Register = 0x4B
	AddrFRAME_1    Register = 0x4C
	AddrFRAME_2    Register = 0x4D
	AddrZBUF_1     Register = 0x4E
	AddrZBUF_2     Register = 0x4F
	AddrBITBLTBUF  Register = 0x50
	AddrTRXPOS     Register = 0x51
	AddrTRXREG     Register = 0x52
	AddrTRXDIR     Register = 0x53
	AddrHWREG      Register = 0x54
	AddrSIGNAL     Register = 0x60
	AddrFINISH     Register = 0x61
	AddrLABEL      Register = 0x62
)
