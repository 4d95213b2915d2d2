package kernel

// L1CacheSize is the assumed per-core L1 data cache size, in bytes, used to
// reject configurations whose tile footprint can't plausibly fit in cache
// before a kernel is ever timed.
const L1CacheSize = 32 * 1024

// tileSize is the square tile edge, in elements, the blocked GEMM below
// multiplies at a time. Two float32 tiles (A and B) of this edge take
// 2*64*64*4 = 32 KiB, exactly L1CacheSize.
const tileSize = 64
