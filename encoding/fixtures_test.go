package encoding

// Metric files captured from sequencing instruments, trimmed to a few records.
var (
	fixtureCorrectedIntV2 = []byte{
		2, 48, 1, 0, 79, 4, 25, 0, 39, 4, 189, 4, 198, 3, 192, 3, 71, 4, 230, 15,
		234, 15, 189, 15, 132, 15, 0, 0, 0, 0, 65, 168, 10, 0, 93, 93, 8, 0, 104, 95,
		8, 0, 238, 221, 9, 0, 91, 34, 63, 65, 1, 0, 80, 4, 1, 0, 15, 5, 22, 6,
		127, 4, 134, 4, 13, 5, 149, 19, 119, 19, 51, 19, 68, 19, 186, 42, 0, 0, 221, 49,
		11, 0, 101, 53, 8, 0, 168, 76, 8, 0, 80, 100, 9, 0, 5, 226, 84, 65, 1, 0,
		81, 4, 25, 0, 1, 4, 147, 4, 164, 3, 144, 3, 45, 4, 91, 15, 91, 15, 83, 15,
		38, 15, 0, 0, 0, 0, 171, 201, 10, 0, 153, 125, 8, 0, 35, 124, 8, 0, 135, 250,
		9, 0, 130, 213, 59, 65,
	}
	fixtureCorrectedIntV3 = []byte{
		3, 34, 7, 0, 90, 4, 1, 0, 245, 0, 252, 0, 61, 0, 235, 0, 52, 0, 0, 0,
		179, 3, 16, 0, 247, 250, 9, 0, 252, 162, 7, 0, 205, 255, 14, 0, 7, 0, 90, 4,
		2, 0, 232, 0, 1, 1, 68, 0, 228, 0, 0, 0, 0, 0, 28, 59, 16, 0, 99, 226,
		8, 0, 252, 248, 8, 0, 44, 139, 14, 0, 7, 0, 90, 4, 3, 0, 227, 0, 12, 1,
		68, 0, 229, 0, 0, 0, 0, 0, 208, 155, 15, 0, 51, 108, 9, 0, 148, 19, 9, 0,
		17, 134, 14, 0,
	}
	fixtureCorrectedIntV4 = []byte{
		4, 28, 3, 0, 67, 56, 3, 0, 1, 0, 0, 0, 0, 0, 1, 180, 1, 0, 184, 22,
		1, 0, 91, 226, 0, 0, 3, 151, 1, 0, 3, 0, 67, 56, 3, 0, 2, 0, 0, 0,
		0, 0, 75, 171, 1, 0, 210, 251, 0, 0, 38, 4, 1, 0, 212, 152, 1, 0, 3, 0,
		67, 56, 3, 0, 3, 0, 0, 0, 0, 0, 181, 161, 1, 0, 178, 11, 1, 0, 68, 254,
		0, 0, 108, 152, 1, 0,
	}
	fixtureErrorV3 = []byte{
		3, 30, 7, 0, 90, 4, 1, 0, 160, 115, 230, 62, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7, 0, 90, 4, 2, 0, 160, 115,
		102, 63, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 7, 0, 90, 4, 3, 0, 244, 101, 238, 62, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	fixtureExtendedTileV1 = []byte{
		1, 10, 7, 0, 90, 4, 0, 0, 208, 142, 192, 74, 7, 0, 190, 4, 0, 0, 110, 17,
		191, 74, 7, 0, 66, 8, 0, 0, 64, 54, 190, 74,
	}
	fixtureExtendedTileV2 = []byte{
		2, 10, 7, 0, 166, 177, 1, 0, 208, 142, 192, 74, 7, 0, 182, 216, 1, 0, 110, 17,
		191, 74, 7, 0, 70, 56, 3, 0, 64, 54, 190, 74,
	}
	fixtureExtendedTileV3 = []byte{
		3, 18, 7, 0, 166, 177, 1, 0, 208, 142, 192, 74, 0, 0, 128, 63, 0, 0, 0, 64,
		7, 0, 182, 216, 1, 0, 110, 17, 191, 74, 0, 0, 64, 64, 0, 0, 128, 64, 7, 0,
		70, 56, 3, 0, 64, 54, 190, 74, 0, 0, 160, 64, 0, 0, 192, 64,
	}
	fixtureExtractionV2 = []byte{
		2, 38, 7, 0, 90, 4, 1, 0, 244, 200, 15, 64, 158, 35, 12, 64, 0, 0, 0, 0,
		0, 0, 0, 0, 46, 1, 17, 1, 0, 0, 0, 0, 96, 215, 152, 36, 122, 170, 210, 136,
		7, 0, 190, 4, 1, 0, 96, 213, 14, 64, 193, 49, 13, 64, 0, 0, 0, 0, 0, 0,
		0, 0, 56, 1, 17, 1, 0, 0, 0, 0, 112, 125, 77, 38, 122, 170, 210, 136, 7, 0,
		66, 8, 1, 0, 74, 188, 6, 64, 138, 249, 8, 64, 0, 0, 0, 0, 0, 0, 0, 0,
		93, 1, 46, 1, 0, 0, 0, 0, 209, 152, 2, 40, 122, 170, 210, 136,
	}
	fixtureImageV1 = []byte{
		1, 12, 1, 0, 77, 4, 1, 0, 0, 0, 128, 3, 232, 18, 1, 0, 77, 4, 1, 0,
		1, 0, 189, 6, 208, 31, 1, 0, 77, 4, 1, 0, 2, 0, 226, 2, 236, 12, 1, 0,
		77, 4, 1, 0, 3, 0, 44, 3, 110, 19, 1, 0, 78, 4, 1, 0, 0, 0, 140, 3,
		221, 18, 1, 0, 78, 4, 1, 0, 1, 0, 234, 6, 223, 31, 1, 0, 78, 4, 1, 0,
		2, 0, 227, 2, 230, 12, 1, 0, 78, 4, 1, 0, 3, 0, 38, 3, 121, 19, 1, 0,
		79, 4, 1, 0, 0, 0, 155, 3, 221, 18, 1, 0, 79, 4, 1, 0, 1, 0, 37, 7,
		44, 32, 1, 0, 79, 4, 1, 0, 2, 0, 222, 2, 232, 12, 1, 0, 79, 4, 1, 0,
		3, 0, 34, 3, 83, 19,
	}
	fixtureImageV2 = []byte{
		2, 14, 2, 7, 0, 90, 4, 1, 0, 231, 0, 207, 0, 206, 1, 131, 1, 7, 0, 190,
		4, 1, 0, 229, 0, 205, 0, 201, 1, 131, 1, 7, 0, 66, 8, 1, 0, 231, 0, 222,
		0, 217, 1, 160, 1,
	}
	fixtureIndexV1 = []byte{
		1, 7, 0, 90, 4, 3, 0, 17, 0, 65, 84, 67, 65, 67, 71, 65, 67, 45, 65, 65,
		71, 71, 84, 84, 67, 65, 218, 17, 0, 0, 1, 0, 49, 11, 0, 84, 83, 67, 65, 73,
		110, 100, 101, 120, 101, 115, 7, 0, 190, 4, 3, 0, 17, 0, 65, 67, 65, 71, 84, 71,
		71, 84, 45, 65, 65, 71, 71, 84, 84, 67, 65, 125, 17, 0, 0, 1, 0, 50, 11, 0,
		84, 83, 67, 65, 73, 110, 100, 101, 120, 101, 115, 7, 0, 66, 8, 3, 0, 17, 0, 67,
		65, 71, 65, 84, 67, 67, 65, 45, 65, 65, 71, 71, 84, 84, 67, 65, 226, 17, 0, 0,
		1, 0, 51, 11, 0, 84, 83, 67, 65, 73, 110, 100, 101, 120, 101, 115,
	}
	fixturePhasingV1 = []byte{
		1, 14, 4, 0, 92, 4, 2, 0, 6, 0, 149, 63, 205, 250, 246, 63, 4, 0, 92, 4,
		3, 0, 6, 0, 21, 63, 197, 233, 7, 64, 4, 0, 92, 4, 4, 0, 6, 0, 149, 62,
		236, 22, 13, 64,
	}
	fixturePhasingV2 = []byte{
		2, 16, 4, 0, 92, 4, 0, 0, 2, 0, 6, 0, 149, 63, 205, 250, 246, 63, 4, 0,
		92, 4, 0, 0, 3, 0, 6, 0, 21, 63, 197, 233, 7, 64, 4, 0, 92, 4, 0, 0,
		4, 0, 6, 0, 149, 62, 236, 22, 13, 64,
	}
	fixtureQCollapsedV2 = []byte{
		2, 22, 1, 0, 81, 4, 1, 0, 54, 88, 37, 0, 109, 160, 35, 0, 94, 42, 39, 0,
		0, 0, 4, 66, 1, 0, 79, 4, 1, 0, 221, 44, 37, 0, 244, 132, 35, 0, 245, 207,
		38, 0, 0, 0, 4, 66, 1, 0, 82, 4, 1, 0, 233, 192, 37, 0, 94, 26, 36, 0,
		77, 108, 39, 0, 0, 0, 4, 66,
	}
	fixtureQCollapsedV6 = []byte{
		6, 22, 1, 7, 2, 10, 20, 25, 30, 35, 40, 9, 19, 24, 29, 34, 39, 40, 2, 14,
		21, 27, 32, 36, 40, 1, 0, 81, 4, 1, 0, 54, 88, 37, 0, 109, 160, 35, 0, 94,
		42, 39, 0, 0, 0, 4, 66, 1, 0, 79, 4, 1, 0, 221, 44, 37, 0, 244, 132, 35,
		0, 245, 207, 38, 0, 0, 0, 4, 66, 1, 0, 82, 4, 1, 0, 233, 192, 37, 0, 94,
		26, 36, 0, 77, 108, 39, 0, 0, 0, 4, 66,
	}
	fixtureQV4 = []byte{
		4, 206, 1, 0, 80, 4, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 216, 82, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 35, 32, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 91, 29, 1, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 158, 178, 35, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 82, 4, 1, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 119, 88,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 98, 37, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 175, 63, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 171, 210, 36, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 80, 4, 2, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 190, 73, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 232, 31, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 186, 27, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 148, 189, 35, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	fixtureQV5 = []byte{
		5, 206, 1, 7, 1, 10, 20, 25, 30, 35, 40, 9, 19, 24, 29, 34, 39, 41, 1, 14,
		22, 27, 33, 37, 40, 1, 0, 79, 4, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 216, 176, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 89, 130, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 177,
		57, 27, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 80, 4, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 173, 176, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 134, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 186, 88, 27, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 84,
		4, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 192, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 64, 146, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 143, 144, 27, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0,
	}
	fixtureQV6 = []byte{
		6, 34, 1, 7, 2, 10, 20, 25, 30, 35, 40, 9, 19, 24, 29, 34, 39, 40, 2, 14,
		21, 27, 32, 36, 40, 7, 0, 90, 4, 1, 0, 0, 0, 0, 0, 186, 22, 4, 0, 175,
		207, 1, 0, 188, 16, 0, 0, 78, 170, 42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7,
		0, 90, 4, 2, 0, 0, 0, 0, 0, 75, 175, 3, 0, 160, 175, 0, 0, 76, 4, 0,
		0, 112, 62, 44, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7, 0, 90, 4, 3, 0, 0,
		0, 0, 0, 176, 60, 3, 0, 182, 210, 0, 0, 171, 1, 0, 0, 150, 144, 44, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	}
	fixtureQV6Unbinned = []byte{
		6, 206, 0, 1, 0, 86, 4, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 86, 4, 2, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 86, 4, 3,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0,
	}
	fixtureTileV2 = []byte{
		2, 10, 7, 0, 90, 4, 100, 0, 189, 190, 15, 74, 7, 0, 90, 4, 102, 0, 74, 122,
		197, 74, 7, 0, 90, 4, 101, 0, 12, 94, 141, 73, 7, 0, 90, 4, 103, 0, 16, 54,
		66, 74, 7, 0, 90, 4, 200, 0, 82, 245, 80, 58, 7, 0, 90, 4, 201, 0, 194, 42,
		157, 58, 7, 0, 90, 4, 44, 1, 154, 113, 39, 64, 7, 0, 90, 4, 202, 0, 82, 245,
		80, 58, 7, 0, 90, 4, 203, 0, 194, 42, 157, 58, 7, 0, 90, 4, 45, 1, 154, 113,
		39, 64, 7, 0, 90, 4, 200, 0, 82, 245, 80, 58, 7, 0, 90, 4, 201, 0, 194, 42,
		157, 58, 7, 0, 90, 4, 44, 1, 154, 113, 39, 64, 7, 0, 190, 4, 100, 0, 189, 190,
		15, 74, 7, 0, 190, 4, 102, 0, 74, 122, 197, 74, 7, 0, 190, 4, 101, 0, 46, 103,
		143, 73, 7, 0, 190, 4, 103, 0, 0, 2, 69, 74, 7, 0, 190, 4, 200, 0, 21, 111,
		169, 58, 7, 0, 190, 4, 201, 0, 170, 29, 177, 58, 7, 0, 190, 4, 44, 1, 6, 214,
		39, 64, 7, 0, 66, 8, 100, 0, 189, 190, 15, 74, 7, 0, 66, 8, 102, 0, 74, 122,
		197, 74, 7, 0, 66, 8, 101, 0, 67, 230, 147, 73, 7, 0, 66, 8, 103, 0, 92, 47,
		75, 74, 7, 0, 66, 8, 200, 0, 123, 22, 156, 58, 7, 0, 66, 8, 201, 0, 85, 6,
		115, 58, 7, 0, 66, 8, 44, 1, 57, 97, 31, 64, 7, 0, 66, 8, 144, 1, 0, 0,
		0, 0, 6, 0, 66, 8, 144, 1, 0, 0, 0, 0,
	}
	fixtureSummaryRunV1 = []byte{
		1, 34, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 240, 63, 0, 0, 0, 0, 0,
		0, 0, 64, 0, 0, 0, 0, 0, 0, 8, 64, 0, 0, 0, 0, 0, 0, 16, 64,
	}
)
