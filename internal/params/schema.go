// Package params defines the pipeline parameter schema for the oneroof
// launcher and resolves parameter values from flags and YAML params files.
package params

// Kind identifies the value shape of a pipeline parameter.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStringList
)

// Spec declares one pipeline parameter: its flag name, value kind, help
// text, whether it must be provided, and allowed values for list parameters.
type Spec struct {
	Name     string
	Kind     Kind
	Help     string
	Required bool
	Choices  []string
}

// Allows reports whether v is an accepted value for a choice-restricted
// parameter. Parameters without choices accept any value.
func (s Spec) Allows(v string) bool {
	if len(s.Choices) == 0 {
		return true
	}
	for _, c := range s.Choices {
		if v == c {
			return true
		}
	}
	return false
}

// Profiles are the run configuration profiles the pipeline accepts.
var Profiles = []string{"standard", "docker", "singularity", "apptainer", "containerless"}

// registry holds the run parameter schema. The slice order is load-bearing:
// flags are registered and command-line fragments are emitted in this order.
var registry = []Spec{
	{Name: "primer_bed", Kind: KindString, Help: "A bed file of primer coordinates relative to the reference provided with the parameters refseq and ref_gbk."},
	{Name: "fwd_suffix", Kind: KindString, Help: "Suffix in the primer bed file denoting forward primer."},
	{Name: "rev_suffix", Kind: KindString, Help: "Suffix in the primer bed file denoting reverse primer."},
	{Name: "refseq", Kind: KindString, Required: true, Help: "The reference sequence to be used for mapping in FASTA format."},
	{Name: "ref_gbk", Kind: KindString, Help: "The reference sequence to be used for variant annotation in Genbank format."},
	{Name: "remote_pod5_location", Kind: KindString, Help: "A remote location to use with a ssh client to watch for pod5 files in realtime as they are generated by the sequencing instrument."},
	{Name: "file_watcher_config", Kind: KindString, Help: "Configuration file for remote file monitoring."},
	{Name: "pod5_staging", Kind: KindString, Help: "Where to cache pod5s as they arrive from the remote location."},
	{Name: "pod5_dir", Kind: KindString, Help: "A local, on-device directory where pod5 files have been manually transferred."},
	{Name: "precalled_staging", Kind: KindString, Help: "A local directory to watch for Nanopore FASTQs or BAMs as they become available."},
	{Name: "prepped_data", Kind: KindString, Help: "Location of already basecalled and demultiplexed pod5 files."},
	{Name: "illumina_fastq_dir", Kind: KindString, Help: "Location of Illumina paired-end FASTQ files."},
	{Name: "model", Kind: KindString, Help: "The Nanopore basecalling model to apply to the provided pod5 data."},
	{Name: "model_cache", Kind: KindString, Help: "Where to cache the models locally."},
	{Name: "kit", Kind: KindString, Help: "The Nanopore barcoding kit used to prepare sequencing libraries."},
	{Name: "pod5_batch_size", Kind: KindInt, Help: "How many pod5 files to basecall at once."},
	{Name: "basecall_max", Kind: KindInt, Help: "How many parallel instances of the basecaller to run at once."},
	{Name: "max_len", Kind: KindInt, Help: "The maximum acceptable length for a given read."},
	{Name: "min_len", Kind: KindInt, Help: "The minimum acceptable length for a given read."},
	{Name: "min_qual", Kind: KindInt, Help: "The minimum acceptable average quality for a given read."},
	{Name: "secondary", Kind: KindBool, Help: "Whether to turn on secondary alignments for each amplicon."},
	{Name: "max_mismatch", Kind: KindInt, Help: "The maximum number of mismatches to allow when finding primers."},
	{Name: "downsample_to", Kind: KindInt, Help: "Desired coverage to downsample to, with 0 indicating no downsampling."},
	{Name: "min_consensus_freq", Kind: KindFloat, Help: "The minimum required frequency of a variant base to be included in a consensus sequence."},
	{Name: "min_haplo_reads", Kind: KindInt, Help: "The minimum required read support to report an amplicon-haplotype."},
	{Name: "snpeff_cache", Kind: KindString, Help: "Where to cache a custom snpEff database."},
	{Name: "min_depth_coverage", Kind: KindInt, Help: "Minimum depth of coverage [default: 20]."},
	{Name: "nextclade_dataset", Kind: KindString, Help: "Nextclade dataset."},
	{Name: "nextclade_cache", Kind: KindString, Help: "Nextclade dataset cache."},
	{Name: "results", Kind: KindString, Help: "Where to place results."},
	{Name: "cleanup", Kind: KindBool, Help: "Whether to cleanup work directory after a successful run."},
	{Name: "resume", Kind: KindBool, Help: "Whether to resume from a previous run."},
	{Name: "snpEff_config", Kind: KindString, Help: "snpEff config file."},
	{Name: "profile", Kind: KindStringList, Choices: Profiles, Help: "The run configuration profile to use."},
}

// Registry returns the run parameter schema in declaration order.
func Registry() []Spec {
	return registry
}

// Lookup returns the schema entry for the named parameter.
func Lookup(name string) (Spec, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}
